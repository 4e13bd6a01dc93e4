// Package catalog holds the display metadata (labels, colors, time windows)
// for every enumerated value exposed by the dashboard. Views read labels from
// here instead of keeping their own lookup tables.
package catalog

import "strings"

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// DefaultLocale is used when a request does not ask for a known locale.
const DefaultLocale = LocaleEN

type Group string

const (
	GroupShift            Group = "shift"
	GroupAttendanceStatus Group = "attendance_status"
	GroupLeaveType        Group = "leave_type"
	GroupLeaveStatus      Group = "leave_status"
	GroupEmployeeStatus   Group = "employee_status"
)

// Entry describes one enumerated value.
type Entry struct {
	Value     string            `json:"value"`
	Labels    map[Locale]string `json:"labels"`
	Color     string            `json:"color"`
	StartTime *string           `json:"start_time,omitempty"`
	EndTime   *string           `json:"end_time,omitempty"`
}

// Label returns the label for locale, falling back to English.
func (e Entry) Label(locale Locale) string {
	if label, ok := e.Labels[locale]; ok {
		return label
	}
	return e.Labels[DefaultLocale]
}

func strPtr(s string) *string { return &s }

func labels(en, zh string) map[Locale]string {
	return map[Locale]string{LocaleEN: en, LocaleZH: zh}
}

var table = map[Group][]Entry{
	GroupShift: {
		{Value: "morning", Labels: labels("Morning", "早班"), Color: "blue", StartTime: strPtr("08:00"), EndTime: strPtr("16:00")},
		{Value: "afternoon", Labels: labels("Afternoon", "中班"), Color: "orange", StartTime: strPtr("16:00"), EndTime: strPtr("24:00")},
		{Value: "night", Labels: labels("Night", "夜班"), Color: "purple", StartTime: strPtr("00:00"), EndTime: strPtr("08:00")},
		{Value: "rest", Labels: labels("Rest", "休息"), Color: "gray"},
	},
	GroupAttendanceStatus: {
		{Value: "normal", Labels: labels("Normal", "正常"), Color: "#00B42A"},
		{Value: "late", Labels: labels("Late", "迟到"), Color: "#F53F3F"},
		{Value: "early_leave", Labels: labels("Early leave", "早退"), Color: "#FF7D00"},
		{Value: "absent", Labels: labels("Absent", "缺勤"), Color: "#86909C"},
		{Value: "overtime", Labels: labels("Overtime", "加班"), Color: "#165DFF"},
	},
	GroupLeaveType: {
		{Value: "annual", Labels: labels("Annual leave", "年假"), Color: "blue"},
		{Value: "sick", Labels: labels("Sick leave", "病假"), Color: "orange"},
		{Value: "personal", Labels: labels("Personal leave", "事假"), Color: "purple"},
		{Value: "maternity", Labels: labels("Maternity leave", "产假"), Color: "green"},
		{Value: "other", Labels: labels("Other", "其他"), Color: "gray"},
	},
	GroupLeaveStatus: {
		{Value: "pending", Labels: labels("Pending", "待审批"), Color: "orange"},
		{Value: "approved", Labels: labels("Approved", "已批准"), Color: "green"},
		{Value: "rejected", Labels: labels("Rejected", "已拒绝"), Color: "red"},
	},
	GroupEmployeeStatus: {
		{Value: "active", Labels: labels("Active", "在职"), Color: "green"},
		{Value: "inactive", Labels: labels("Inactive", "离职"), Color: "red"},
	},
}

var unknownLabel = labels("Unknown", "未知")

// UnknownLabel is rendered for values (or references) that cannot be resolved.
func UnknownLabel(locale Locale) string {
	if label, ok := unknownLabel[locale]; ok {
		return label
	}
	return unknownLabel[DefaultLocale]
}

// Lookup finds the entry for value within group.
func Lookup(group Group, value string) (Entry, bool) {
	for _, e := range table[group] {
		if e.Value == value {
			return e, true
		}
	}
	return Entry{}, false
}

// Label returns the localized label of value, or the unknown label.
func Label(group Group, value string, locale Locale) string {
	e, ok := Lookup(group, value)
	if !ok {
		return UnknownLabel(locale)
	}
	return e.Label(locale)
}

// Color returns the display color of value, or "gray" when unknown.
func Color(group Group, value string) string {
	e, ok := Lookup(group, value)
	if !ok {
		return "gray"
	}
	return e.Color
}

// Values lists the accepted values of a group in display order.
func Values(group Group) []string {
	entries := table[group]
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

// All returns a copy of the whole table.
func All() map[Group][]Entry {
	out := make(map[Group][]Entry, len(table))
	for g, entries := range table {
		cp := make([]Entry, len(entries))
		copy(cp, entries)
		out[g] = cp
	}
	return out
}

// ParseLocale maps "zh", "zh-CN", "en-US" etc. to a supported locale.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "zh"):
		return LocaleZH
	default:
		return LocaleEN
	}
}

// Page is a navigable dashboard view.
type Page struct {
	Path   string            `json:"path"`
	Key    string            `json:"key"`
	Titles map[Locale]string `json:"titles"`
}

var pages = []Page{
	{Path: "/", Key: "dashboard", Titles: labels("Dashboard", "仪表盘")},
	{Path: "/employees", Key: "employees", Titles: labels("Employees", "人员管理")},
	{Path: "/schedule", Key: "schedule", Titles: labels("Schedule", "排班管理")},
	{Path: "/attendance-report", Key: "attendance_report", Titles: labels("Attendance report", "考勤报表")},
	{Path: "/attendance-analysis", Key: "attendance_analysis", Titles: labels("Attendance analysis", "考勤分析")},
	{Path: "/leave-management", Key: "leave_management", Titles: labels("Leave management", "请假管理")},
}

// Pages returns the dashboard navigation menu.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}
