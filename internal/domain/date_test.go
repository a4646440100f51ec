package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-07")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.March, 7), d)
	assert.Equal(t, "2025-03-07", d.String())

	_, err = ParseDate("07/03/2025")
	assert.Error(t, err)
}

func TestDate_Before(t *testing.T) {
	d := NewDate(2025, time.March, 7)

	assert.True(t, d.Before(NewDate(2025, time.March, 8)))
	assert.True(t, d.Before(NewDate(2025, time.April, 1)))
	assert.True(t, d.Before(NewDate(2026, time.January, 1)))
	assert.False(t, d.Before(d))
	assert.False(t, d.Before(NewDate(2025, time.February, 28)))
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, NewDate(2025, time.March, 1), NewDate(2025, time.February, 28).AddDays(1))
	assert.Equal(t, NewDate(2024, time.December, 31), NewDate(2025, time.January, 1).AddDays(-1))
}

func TestDateOf_IgnoresClock(t *testing.T) {
	morning := time.Date(2025, time.March, 7, 0, 1, 0, 0, time.Local)
	evening := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.Local)

	assert.Equal(t, DateOf(morning), DateOf(evening))
	assert.False(t, DateOf(morning).IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-12-31"}`), &payload))
	assert.Equal(t, NewDate(2025, time.December, 31), payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-12-31"}`, string(out))
}
