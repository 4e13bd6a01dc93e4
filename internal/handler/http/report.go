package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GetAttendanceReport serves JSON by default and a file download for
	// format=csv|xlsx|pdf.
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.AttendanceReportRequest{
		DepartmentID: queryPtr(r, "department_id"),
		StartDate:    queryPtr(r, "start_date"),
		EndDate:      queryPtr(r, "end_date"),
		Format:       r.URL.Query().Get("format"),
		Locale:       r.URL.Query().Get("locale"),
	}

	if req.Format == "" || req.Format == string(report.FormatJSON) {
		result, err := h.reportService.GetAttendanceReport(ctx, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMeta(w, result, &response.Meta{TotalItems: result.TotalCount, Locale: result.Locale})
		return
	}

	file, err := h.reportService.ExportAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.ContentType, file.Filename, file.Content)
}
