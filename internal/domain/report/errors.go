package report

import "errors"

var (
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrUnsupportedFormat      = errors.New("unsupported report format")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
