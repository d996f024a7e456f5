package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_RoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-15"`), &d))
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-15"`, string(out))
}

func TestDate_RejectsBadInput(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/08/2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2026-13-01"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`""`), &d))
}

func TestNewDate_TruncatesToMidnightUTC(t *testing.T) {
	d := NewDate(time.Date(2026, 8, 15, 17, 42, 3, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestMoneyString(t *testing.T) {
	d, err := decimal.NewFromString("7.5")
	require.NoError(t, err)
	assert.Equal(t, "7.50", MoneyString(d))
}

func TestNullMoneyString(t *testing.T) {
	assert.Nil(t, NullMoneyString(decimal.NullDecimal{}))

	s := NullMoneyString(decimal.NewNullDecimal(decimal.NewFromFloat(600)))
	require.NotNil(t, s)
	assert.Equal(t, "600.00", *s)
}
