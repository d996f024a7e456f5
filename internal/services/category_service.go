package services

import (
	"errors"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	// ErrCategoryNameNull is returned when a partial update explicitly
	// nulls the name. The name can change but never be removed.
	ErrCategoryNameNull = errors.New("category name cannot be null")
)

// DuplicateCategoryNameError carries the existing category so the API can
// point the caller at the record they collided with.
type DuplicateCategoryNameError struct {
	Name string
	ID   int64
}

func (e *DuplicateCategoryNameError) Error() string {
	return fmt.Sprintf("Category with name '%s' already exists (ID %d)", e.Name, e.ID)
}

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// Create normalizes the requested name and persists a new category.
// Uniqueness is evaluated against the normalized form, so "  food " and
// "Food" are the same category.
func (s *categoryService) Create(req dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name: models.NormalizeCategoryName(req.Name),
	}
	if req.Budget != nil {
		category.Budget = decimal.NewNullDecimal(*req.Budget)
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkNameAvailable(category.Name, 0); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategoryName) {
			return nil, s.duplicateError(category.Name)
		}
		return nil, err
	}

	return category, nil
}

// GetAll returns all categories
func (s *categoryService) GetAll() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetByID returns a single category
func (s *categoryService) GetByID(id int64) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// Update applies a partial update. Only fields present in the request are
// touched; a present-but-null budget clears it, a present-but-null name is
// rejected.
func (s *categoryService) Update(id int64, req dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name.Present {
		if req.Name.IsNull() {
			return nil, ErrCategoryNameNull
		}
		normalized := models.NormalizeCategoryName(*req.Name.Value)
		if normalized != category.Name {
			if err := s.checkNameAvailable(normalized, id); err != nil {
				return nil, err
			}
		}
		category.Name = normalized
	}

	if req.Budget.Present {
		if req.Budget.IsNull() {
			category.Budget = decimal.NullDecimal{}
		} else {
			category.Budget = decimal.NewNullDecimal(*req.Budget.Value)
		}
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategoryName) {
			return nil, s.duplicateError(category.Name)
		}
		return nil, err
	}

	return category, nil
}

// Delete removes a category. Transactions tagged with it are untagged, not
// deleted.
func (s *categoryService) Delete(id int64) error {
	return s.categoryRepo.Delete(id)
}

// checkNameAvailable verifies no other category holds the normalized name.
// excludeID skips the category being updated so renames to the same name
// are not self-conflicts.
func (s *categoryService) checkNameAvailable(name string, excludeID int64) error {
	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return &DuplicateCategoryNameError{Name: existing.Name, ID: existing.ID}
}

// duplicateError resolves the colliding category after a unique-index
// violation, so a lost race still reports the winner's ID.
func (s *categoryService) duplicateError(name string) error {
	if existing, err := s.categoryRepo.GetByName(name); err == nil {
		return &DuplicateCategoryNameError{Name: existing.Name, ID: existing.ID}
	}
	return &DuplicateCategoryNameError{Name: name}
}
