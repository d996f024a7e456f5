package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const (
	CategoryNameMinLength = 1
	CategoryNameMaxLength = 25
)

var (
	ErrCategoryNameTooShort = errors.New("string_too_short: category name must be at least 1 character after normalization")
	ErrCategoryNameTooLong  = errors.New("string_too_long: category name must be at most 25 characters after normalization")
)

var titleCaser = cases.Title(language.English)

// Category is a named budget bucket transactions can be tagged with.
// Name is stored in normalized form and is unique across all categories.
// Budget is optional; a null budget means "no budget set".
type Category struct {
	ID     int64               `gorm:"primaryKey" json:"id"`
	Name   string              `gorm:"type:varchar(25);not null;uniqueIndex:idx_categories_name" json:"name"`
	Budget decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"budget"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// NormalizeCategoryName collapses internal whitespace to single spaces,
// trims, and title-cases the result. Uniqueness is checked against this
// normalized form.
func NormalizeCategoryName(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return titleCaser.String(collapsed)
}

// Validate validates the category fields. Name is expected to already be
// normalized by the service layer.
func (c *Category) Validate() error {
	length := utf8.RuneCountInString(c.Name)
	if length < CategoryNameMinLength {
		return ErrCategoryNameTooShort
	}
	if length > CategoryNameMaxLength {
		return ErrCategoryNameTooLong
	}

	if c.Budget.Valid {
		if err := ValidateMoney(c.Budget.Decimal); err != nil {
			return err
		}
	}

	return nil
}

// BeforeSave hook for Category
func (c *Category) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}
