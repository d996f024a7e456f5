package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoryName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"food", "Food"},
		{"FOOD", "Food"},
		{"   food  and drINK  ", "Food And Drink"},
		{"groceries", "Groceries"},
		{"a  b   c", "A B C"},
		{"already Normal", "Already Normal"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeCategoryName(tc.input), "input %q", tc.input)
	}
}

func TestCategoryValidate(t *testing.T) {
	category := &Category{Name: "Groceries"}
	assert.NoError(t, category.Validate())

	category.Budget = decimal.NewNullDecimal(decimal.NewFromFloat(600.00))
	assert.NoError(t, category.Validate())
}

func TestCategoryValidate_NameTooShort(t *testing.T) {
	category := &Category{Name: ""}
	assert.ErrorIs(t, category.Validate(), ErrCategoryNameTooShort)
}

func TestCategoryValidate_NameTooLong(t *testing.T) {
	category := &Category{Name: strings.Repeat("x", 26)}
	assert.ErrorIs(t, category.Validate(), ErrCategoryNameTooLong)
}

func TestCategoryValidate_BudgetShape(t *testing.T) {
	category := &Category{
		Name:   "Groceries",
		Budget: decimal.NewNullDecimal(decimal.RequireFromString("1.999")),
	}
	assert.ErrorIs(t, category.Validate(), ErrMoneyTooManyPlaces)
}
