package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  int
		total int
		want  float64
	}{
		{"zero total", 3, 0, 0},
		{"empty", 0, 0, 0},
		{"all", 4, 4, 100},
		{"rounded", 2, 3, 66.7},
		{"none", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.part, tt.total))
		})
	}
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(10, 0))
	assert.Equal(t, 8.2, Average(24.5, 3))
}

func TestAttendanceAnalysisRequest_Range(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 4, 0, 0, time.UTC)

	t.Run("defaults to last 30 days", func(t *testing.T) {
		start, end := AttendanceAnalysisRequest{}.Range(now)
		assert.Equal(t, "2024-03-02", start.Format("2006-01-02"))
		assert.Equal(t, "2024-03-31", end.Format("2006-01-02"))
	})

	t.Run("explicit dates", func(t *testing.T) {
		s, e := "2024-01-01", "2024-01-10"
		start, end := AttendanceAnalysisRequest{StartDate: &s, EndDate: &e}.Range(now)
		assert.Equal(t, "2024-01-01", start.Format("2006-01-02"))
		assert.Equal(t, "2024-01-10", end.Format("2006-01-02"))
	})
}

func TestAttendanceAnalysisRequest_Validate(t *testing.T) {
	s, e := "2024-01-10", "2024-01-01"
	req := AttendanceAnalysisRequest{StartDate: &s, EndDate: &e}
	assert.Error(t, req.Validate())

	blank := " "
	req = AttendanceAnalysisRequest{DepartmentID: &blank}
	assert.NoError(t, req.Validate())
	assert.Nil(t, req.DepartmentID)
}
