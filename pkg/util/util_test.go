package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMinutes(t *testing.T) {
	reference := time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

	shifted := AddMinutes(reference, 480)

	assert.Equal(t, time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC), shifted)
	assert.Equal(t, time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC), reference)
	assert.Equal(t, reference.Add(-time.Hour), AddMinutes(reference, -60))
}

func TestMinutesCeil(t *testing.T) {
	window := 480 * time.Minute

	assert.Equal(t, 3, MinutesCeil(1080*time.Minute, window))
	assert.Equal(t, 2, MinutesCeil(960*time.Minute, window))
	assert.Equal(t, 1, MinutesCeil(time.Minute, window))
	assert.Equal(t, 0, MinutesCeil(0, window))
	assert.Equal(t, 0, MinutesCeil(-time.Hour, window))
}

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}

	InPlaceFilter(&values, func(i int) bool { return i%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, values)
}

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("MAVFARES_LANGUAGE", "hu")
	t.Setenv("UNRELATED_LANGUAGE", "de")

	assert.Equal(t, "hu", GetEnvironmentVariable("LANGUAGE", "en"))
	assert.Equal(t, "fallback", GetEnvironmentVariable("MISSING", "fallback"))
	assert.NotContains(t, GetEnvironmentVariables(), "UNRELATED_LANGUAGE")
}
