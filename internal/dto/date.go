package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates
const DateFormat = "2006-01-02"

// Date is a calendar date with no time component. It serializes as
// YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("date must not be empty")
	}

	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}

	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}
