package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same day earlier hour", time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC), 0},
		{"same day later hour", time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow just after midnight", time.Date(2024, 3, 16, 0, 1, 0, 0, time.UTC), 1},
		{"yesterday late evening", time.Date(2024, 3, 14, 23, 0, 0, 0, time.UTC), -1},
		{"thirty days out", time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC), 30},
		{"across leap day", time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), -16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.target, today))
		})
	}
}

func TestDaysUntil_UsesTodaysLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	today := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)

	// 20:00 UTC on the 15th is already the 16th in IST.
	target := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(target, today))
}

func TestDaysUntil_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	today := time.Date(2024, 3, 9, 12, 0, 0, 0, loc)
	target := time.Date(2024, 3, 11, 0, 30, 0, 0, loc)

	assert.Equal(t, 2, DaysUntil(target, today))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 7, 4, 18, 30, 15, 99, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	c := Fixed(at)
	assert.True(t, at.Equal(c.Now()))
	assert.True(t, at.Equal(c.Now()))
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoadLocation("Not/AZone")
	assert.Error(t, err)
}
