package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	EmployeeSummary EmployeeSummaryResponse `json:"employee_summary"`
	AttendanceStats AttendanceStatsResponse `json:"attendance_stats"`
	LeaveStats      LeaveStatsResponse      `json:"leave_stats"`
	Date            string                  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== EMPLOYEE SUMMARY ==========

type EmployeeSummaryResponse struct {
	TotalEmployee    int64 `json:"total_employee"`
	ActiveEmployee   int64 `json:"active_employee"`
	InactiveEmployee int64 `json:"inactive_employee"`
}

// ========== DAILY ATTENDANCE STATS ==========

// AttendanceStatsResponse counts today's attendance against the active headcount.
// Absent covers both recorded absences and employees with no record yet.
type AttendanceStatsResponse struct {
	Present     int64   `json:"present"`
	Late        int64   `json:"late"`
	Absent      int64   `json:"absent"`
	Headcount   int64   `json:"headcount"`
	PresentRate float64 `json:"present_rate"`
	LateRate    float64 `json:"late_rate"`
	AbsentRate  float64 `json:"absent_rate"`
	Date        string  `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== LEAVE STATS ==========

type LeaveStatsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
