package clock_test

import (
	"testing"

	"go-shiftplan/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	h, err := clock.Parse("10:30")
	assert.NoError(t, err)
	assert.InDelta(t, 10.5, h, 1e-9)

	h, err = clock.Parse("7:15")
	assert.NoError(t, err)
	assert.InDelta(t, 7.25, h, 1e-9)

	for _, bad := range []string{"", "10", "24:00", "10:60", "ab:cd", "10:5", "100:00"} {
		_, err := clock.Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestSpan(t *testing.T) {
	assert.InDelta(t, 6.0, clock.Span("10:00", "16:00"), 1e-9)
	assert.InDelta(t, 7.0, clock.Span("16:00", "23:00"), 1e-9)
	assert.InDelta(t, 8.75, clock.Span("08:15", "17:00"), 1e-9)
	assert.Equal(t, 0.0, clock.Span("16:00", "10:00"))
	assert.Equal(t, 0.0, clock.Span("", "10:00"))
}

func TestBefore(t *testing.T) {
	ok, err := clock.Before("09:00", "17:00")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = clock.Before("17:00", "17:00")
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = clock.Before("x", "17:00")
	assert.Error(t, err)
}
