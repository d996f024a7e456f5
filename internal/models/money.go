package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Fixed-point constraints for all monetary columns: NUMERIC(10,2)
const (
	MoneyMaxDigits     = 10
	MoneyMaxPlaces     = 2
	MoneyMaxWholeDigit = MoneyMaxDigits - MoneyMaxPlaces
)

var (
	ErrMoneyTooManyDigits      = errors.New("decimal_max_digits: ensure the value has no more than 10 digits in total")
	ErrMoneyTooManyPlaces      = errors.New("decimal_max_places: ensure the value has no more than 2 decimal places")
	ErrMoneyTooManyWholeDigits = errors.New("decimal_whole_digits: ensure the value has no more than 8 digits before the decimal point")
)

// ValidateMoney enforces the fixed-point shape shared by budgets and amounts.
// The three failure modes are distinct errors so the API can report which
// constraint was violated. Checks are ordered so an overlong value reports
// the total-digit violation before the whole-digit one.
func ValidateMoney(d decimal.Decimal) error {
	coefficient := d.Coefficient().String()
	if coefficient[0] == '-' {
		coefficient = coefficient[1:]
	}

	digits := len(coefficient)
	places := 0
	if d.Exponent() < 0 {
		places = int(-d.Exponent())
	} else {
		// 1e2 style values still occupy whole digits
		digits += int(d.Exponent())
	}

	if digits > MoneyMaxDigits {
		return ErrMoneyTooManyDigits
	}
	if places > MoneyMaxPlaces {
		return ErrMoneyTooManyPlaces
	}
	if digits-places > MoneyMaxWholeDigit {
		return ErrMoneyTooManyWholeDigits
	}

	return nil
}

// IsMoneyValidationError reports whether err is one of the fixed-point
// validation errors produced by ValidateMoney
func IsMoneyValidationError(err error) bool {
	return errors.Is(err, ErrMoneyTooManyDigits) ||
		errors.Is(err, ErrMoneyTooManyPlaces) ||
		errors.Is(err, ErrMoneyTooManyWholeDigits)
}
