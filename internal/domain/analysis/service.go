package analysis

import "context"

type AnalysisService interface {
	GetAttendanceAnalysis(ctx context.Context, req AttendanceAnalysisRequest) (*AttendanceAnalysisResponse, error)
}
