package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/export"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	now        func() time.Time
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// resolveLocale prefers the explicit request locale over the request context.
func resolveLocale(ctx context.Context, requested string) catalog.Locale {
	if strings.TrimSpace(requested) != "" {
		return catalog.ParseLocale(requested)
	}
	return catalog.LocaleFrom(ctx)
}

// GetAttendanceReport returns the joined, labelled rows for the requested range.
func (s *ReportServiceImpl) GetAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (*report.AttendanceReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.build(ctx, req, resolveLocale(ctx, req.Locale))
}

func (s *ReportServiceImpl) build(ctx context.Context, req report.AttendanceReportRequest, locale catalog.Locale) (*report.AttendanceReportResponse, error) {
	start, end := req.Range(s.now())
	if end.Before(start) {
		return nil, report.ErrInvalidDateRange
	}

	rows, err := s.reportRepo.GetAttendanceReport(ctx, start, end, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance report rows: %w", err)
	}

	unknown := catalog.UnknownLabel(locale)
	counts := make(map[string]int)
	for i := range rows {
		row := &rows[i]
		if row.EmployeeName == "" {
			row.EmployeeName = unknown
		}
		if row.DepartmentName == "" {
			row.DepartmentName = unknown
		}
		row.StatusLabel = catalog.Label(catalog.GroupAttendanceStatus, row.Status, locale)
		row.StatusColor = catalog.Color(catalog.GroupAttendanceStatus, row.Status)
		counts[row.Status]++
	}

	statusCounts := make([]report.StatusCount, 0, len(counts))
	for _, status := range catalog.Values(catalog.GroupAttendanceStatus) {
		statusCounts = append(statusCounts, report.StatusCount{
			Status: status,
			Label:  catalog.Label(catalog.GroupAttendanceStatus, status, locale),
			Color:  catalog.Color(catalog.GroupAttendanceStatus, status),
			Count:  counts[status],
		})
	}

	return &report.AttendanceReportResponse{
		StartDate:    start.Format(validator.DateLayout),
		EndDate:      end.Format(validator.DateLayout),
		DepartmentID: req.DepartmentID,
		Locale:       string(locale),
		GeneratedAt:  s.now().Format(time.RFC3339),
		TotalCount:   len(rows),
		StatusCounts: statusCounts,
		Rows:         rows,
	}, nil
}

// ExportAttendanceReport renders the report as a downloadable file. PDF
// output always uses English labels since the core PDF fonts are Latin-1 only.
func (s *ReportServiceImpl) ExportAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (*report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	format := report.Format(req.Format)
	locale := resolveLocale(ctx, req.Locale)
	if format == report.FormatPDF {
		locale = catalog.LocaleEN
	}

	resp, err := s.build(ctx, req, locale)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   report.Title(locale),
		Headers: report.Columns(locale),
		Rows:    make([][]any, 0, len(resp.Rows)),
	}
	for _, row := range resp.Rows {
		table.Rows = append(table.Rows, row.Cells())
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case report.FormatJSON:
		content, err = json.Marshal(resp)
		contentType = "application/json"
	case report.FormatCSV:
		content, err = export.CSV(table)
		contentType = export.ContentTypeCSV
	case report.FormatXLSX:
		content, err = export.XLSX(table)
		contentType = export.ContentTypeXLSX
	case report.FormatPDF:
		content, err = export.PDF(table)
		contentType = export.ContentTypePDF
	default:
		return nil, report.ErrUnsupportedFormat
	}
	if err != nil {
		slog.Error("failed to render attendance report", "format", format, "error", err)
		return nil, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	return &report.ExportFile{
		ContentType: contentType,
		Filename:    fmt.Sprintf("attendance_report_%s.%s", s.now().Format(validator.DateLayout), format),
		Content:     content,
	}, nil
}
