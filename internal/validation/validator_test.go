package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidYearMonth(t *testing.T) {
	valid := []string{
		"2020-01",
		"2025-12",
		"1999-06",
		fmt.Sprintf("%d-12", time.Now().UTC().Year()),
	}
	for _, value := range valid {
		assert.True(t, IsValidYearMonth(value), "expected %q to be valid", value)
	}

	invalid := []string{
		"",
		"2026-1",
		"2026-13",
		"2026-00",
		"26-01",
		"2026/01",
		"abcd-ef",
		"2026-01-01",
		fmt.Sprintf("%d-01", time.Now().UTC().Year()+1),
	}
	for _, value := range invalid {
		assert.False(t, IsValidYearMonth(value), "expected %q to be invalid", value)
	}
}

func TestValidatorRegistersYearMonthTag(t *testing.T) {
	type query struct {
		YearMonth string `json:"year_month" validate:"required,year_month"`
	}

	v := NewValidator()

	assert.NoError(t, v.GetValidate().Struct(query{YearMonth: "2025-07"}))
	assert.Error(t, v.GetValidate().Struct(query{YearMonth: "2025-7"}))
	assert.Error(t, v.GetValidate().Struct(query{}))
}
