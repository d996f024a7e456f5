package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategoryName = errors.New("category name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create persists a new category. A unique-index violation on the normalized
// name is surfaced as ErrDuplicateCategoryName so a racing create still
// resolves to a conflict rather than a generic failure.
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategoryName
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetAll retrieves all categories in store order
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id int64) (*models.Category, error) {
	category := &models.Category{}
	if err := r.db.First(category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// GetByName retrieves a category by its normalized name
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// Update persists all fields of the category
func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategoryName
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category. Referencing transactions have their
// category_id cleared inside the same database transaction; the schema's
// ON DELETE SET NULL is only a backstop, the clearing here is what tests
// and sqlite-backed runs rely on.
func (r *categoryRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ?", id).
			UpdateColumn("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear category references: %w", err)
		}

		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
