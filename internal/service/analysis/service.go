package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/analysis"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/catalog"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type AnalysisServiceImpl struct {
	analysisRepo analysis.AnalysisRepository
	now          func() time.Time
}

func NewAnalysisService(analysisRepo analysis.AnalysisRepository) analysis.AnalysisService {
	return &AnalysisServiceImpl{
		analysisRepo: analysisRepo,
		now:          time.Now,
	}
}

// GetAttendanceAnalysis computes every section of the analysis view from one
// dataset read. Sections are independent and built concurrently.
func (s *AnalysisServiceImpl) GetAttendanceAnalysis(ctx context.Context, req analysis.AttendanceAnalysisRequest) (*analysis.AttendanceAnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	locale := catalog.LocaleFrom(ctx)
	if strings.TrimSpace(req.Locale) != "" {
		locale = catalog.ParseLocale(req.Locale)
	}

	start, end := req.Range(s.now())
	if err := analysis.CheckRange(start, end); err != nil {
		return nil, err
	}
	ds, err := s.analysisRepo.GetAttendanceDataset(ctx, start, end, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance dataset: %w", err)
	}

	resp := &analysis.AttendanceAnalysisResponse{
		StartDate:    start.Format(validator.DateLayout),
		EndDate:      end.Format(validator.DateLayout),
		DepartmentID: req.DepartmentID,
		Locale:       string(locale),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp.Summary = summarize(ds.Records)
		return gCtx.Err()
	})

	g.Go(func() error {
		resp.DailyTrend = dailyTrend(ds.Records, start, end)
		return gCtx.Err()
	})

	g.Go(func() error {
		resp.DepartmentStats = departmentStats(ds)
		return gCtx.Err()
	})

	g.Go(func() error {
		resp.StatusDistribution = statusDistribution(ds.Records, locale)
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

type tally struct {
	total, present, punctual, late, absent int
}

func (t *tally) add(status attendance.AttendanceStatus) {
	t.total++
	if status.Present() {
		t.present++
	}
	if status.Punctual() {
		t.punctual++
	}
	switch status {
	case attendance.AttendanceStatusLate:
		t.late++
	case attendance.AttendanceStatusAbsent:
		t.absent++
	}
}

// attendanceRate is present/total; punctualityRate is on-time arrivals over
// present records.
func (t tally) attendanceRate() float64  { return analysis.Percent(t.present, t.total) }
func (t tally) punctualityRate() float64 { return analysis.Percent(t.punctual, t.present) }

func summarize(records []attendance.AttendanceRecord) analysis.Summary {
	var (
		t         tally
		overtime  float64
		workHours float64
	)
	for _, rec := range records {
		t.add(rec.Status)
		overtime += rec.Overtime()
		if rec.Status.Present() {
			workHours += rec.WorkHours
		}
	}

	sum := analysis.Summary{
		TotalRecords:     t.total,
		AttendanceRate:   t.attendanceRate(),
		PunctualityRate:  t.punctualityRate(),
		OvertimeHours:    analysis.Round1(overtime),
		AverageWorkHours: analysis.Average(workHours, t.present),
	}
	sum.AttendanceOnTarget = sum.AttendanceRate >= analysis.AttendanceRateTarget
	sum.PunctualityOnTarget = sum.PunctualityRate >= analysis.PunctualityRateTarget
	return sum
}

// dailyTrend emits one point per weekday in [start, end], including days
// without records.
func dailyTrend(records []attendance.AttendanceRecord, start, end time.Time) []analysis.DailyTrendPoint {
	byDay := make(map[string]*tally)
	for _, rec := range records {
		day := rec.Date.Format(validator.DateLayout)
		t, ok := byDay[day]
		if !ok {
			t = &tally{}
			byDay[day] = t
		}
		t.add(rec.Status)
	}

	points := []analysis.DailyTrendPoint{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		day := d.Format(validator.DateLayout)
		var t tally
		if found, ok := byDay[day]; ok {
			t = *found
		}
		points = append(points, analysis.DailyTrendPoint{
			Date:            day,
			Label:           d.Format("01-02"),
			Records:         t.total,
			AttendanceRate:  t.attendanceRate(),
			PunctualityRate: t.punctualityRate(),
		})
	}
	return points
}

func departmentStats(ds *analysis.Dataset) []analysis.DepartmentStat {
	deptOf := make(map[string]string, len(ds.Employees))
	headcount := make(map[string]int)
	for _, e := range ds.Employees {
		deptOf[e.ID] = e.DepartmentID
		if e.IsActive() {
			headcount[e.DepartmentID]++
		}
	}

	tallies := make(map[string]*tally)
	for _, rec := range ds.Records {
		deptID, ok := deptOf[rec.EmployeeID]
		if !ok {
			continue
		}
		t, ok := tallies[deptID]
		if !ok {
			t = &tally{}
			tallies[deptID] = t
		}
		t.add(rec.Status)
	}

	stats := make([]analysis.DepartmentStat, 0, len(ds.Departments))
	for _, d := range ds.Departments {
		var t tally
		if found, ok := tallies[d.ID]; ok {
			t = *found
		}
		rate := t.attendanceRate()
		stats = append(stats, analysis.DepartmentStat{
			DepartmentID:   d.ID,
			Department:     d.Name,
			Headcount:      headcount[d.ID],
			Total:          t.total,
			Present:        t.present,
			Late:           t.late,
			Absent:         t.absent,
			AttendanceRate: rate,
			OnTarget:       rate >= analysis.AttendanceRateTarget,
		})
	}
	return stats
}

func statusDistribution(records []attendance.AttendanceRecord, locale catalog.Locale) []analysis.StatusShare {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[string(rec.Status)]++
	}

	shares := make([]analysis.StatusShare, 0, len(attendance.AttendanceStatusValues))
	for _, status := range catalog.Values(catalog.GroupAttendanceStatus) {
		shares = append(shares, analysis.StatusShare{
			Status:  status,
			Label:   catalog.Label(catalog.GroupAttendanceStatus, status, locale),
			Color:   catalog.Color(catalog.GroupAttendanceStatus, status),
			Count:   counts[status],
			Percent: analysis.Percent(counts[status], len(records)),
		})
	}
	return shares
}
