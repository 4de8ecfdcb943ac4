package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "842 m", FormatDistance(841.7))
	assert.Equal(t, "1.24 km", FormatDistance(1240))
	assert.Equal(t, "0 m", FormatDistance(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:45", FormatDuration(45))
	assert.Equal(t, "12:05", FormatDuration(725))
	assert.Equal(t, "1:01:05", FormatDuration(3665))
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "18.0 km/h", FormatSpeed(5))
	assert.Equal(t, "0.0 km/h", FormatSpeed(0))
}

func TestFormatCalories(t *testing.T) {
	assert.Equal(t, "351 cal", FormatCalories(350.6))
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"walking", "running", "cycling", "hiking"} {
		mode, err := ParseMode(valid)
		assert.NoError(t, err)
		assert.Equal(t, WalkMode(valid), mode)
	}

	_, err := ParseMode("flying")
	assert.Error(t, err)
	_, err = ParseMode("all")
	assert.Error(t, err)
}
