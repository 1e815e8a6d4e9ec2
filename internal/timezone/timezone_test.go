package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("").String())
	assert.Equal(t, "America/Sao_Paulo", Location("not-a-tz").String())
	assert.Equal(t, "America/New_York", Location("America/New_York").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestDayOf(t *testing.T) {
	loc := Location("America/Sao_Paulo")
	instant := time.Date(2026, 3, 10, 18, 45, 12, 999, loc)

	day := DayOf(instant)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 10, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}
