package analysis

import "math"

const (
	AttendanceRateTarget  = 90.0
	PunctualityRateTarget = 85.0
)

// Percent returns part/total as a percentage rounded to one decimal, or 0
// when total is zero.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

// Average returns sum/n rounded to one decimal, or 0 when n is zero.
func Average(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Round1(sum / float64(n))
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
