package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/analysis"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type AnalysisHandler interface {
	GetAttendanceAnalysis(w http.ResponseWriter, r *http.Request)
}

type analysisHandlerImpl struct {
	analysisService analysis.AnalysisService
}

func NewAnalysisHandler(analysisService analysis.AnalysisService) AnalysisHandler {
	return &analysisHandlerImpl{analysisService: analysisService}
}

// GetAttendanceAnalysis handles GET /analysis/attendance
func (h *analysisHandlerImpl) GetAttendanceAnalysis(w http.ResponseWriter, r *http.Request) {
	req := analysis.AttendanceAnalysisRequest{
		DepartmentID: queryPtr(r, "department_id"),
		StartDate:    queryPtr(r, "start_date"),
		EndDate:      queryPtr(r, "end_date"),
		Locale:       r.URL.Query().Get("locale"),
	}

	result, err := h.analysisService.GetAttendanceAnalysis(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
