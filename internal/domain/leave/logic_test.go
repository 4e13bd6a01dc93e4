package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestCalculateDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "three days", start: "2024-01-01", end: "2024-01-03", want: 3},
		{name: "single day", start: "2024-01-01", end: "2024-01-01", want: 1},
		{name: "across leap day", start: "2024-02-28", end: "2024-03-01", want: 3},
		{name: "across month end", start: "2024-01-30", end: "2024-02-02", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDays(mustDay(t, tt.start), mustDay(t, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 15, 0, 0, time.UTC)

	got, err := CalculateDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCalculateDays_InvertedRange(t *testing.T) {
	got, err := CalculateDays(mustDay(t, "2024-01-03"), mustDay(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Zero(t, got)
}
