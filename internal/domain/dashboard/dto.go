package dashboard

// ========== TODAY ==========

// TodayStatsResponse is the headline card row on the dashboard.
// AbsentToday counts distinct employees; OnLeaveToday counts records, so an
// employee with two overlapping leave records appears twice there.
type TodayStatsResponse struct {
	TotalEmployees int    `json:"total_employees"`
	PresentToday   int    `json:"present_today"`
	AbsentToday    int    `json:"absent_today"`
	OnLeaveToday   int    `json:"on_leave_today"`
	Date           string `json:"date"` // YYYY-MM-DD
}

// ========== LAST WEEK ==========

// WeekSummaryResponse aggregates the trailing seven calendar days.
type WeekSummaryResponse struct {
	TotalAbsences int            `json:"total_absences"`
	TotalLeaves   int            `json:"total_leaves"`
	Daily         []DayBreakdown `json:"daily"`
}

type DayBreakdown struct {
	Date     string `json:"date"`
	Absences int    `json:"absences"`
	Leaves   int    `json:"leaves"`
}

// DashboardResponse is the combined payload for the main dashboard endpoint.
type DashboardResponse struct {
	Today    TodayStatsResponse  `json:"today"`
	LastWeek WeekSummaryResponse `json:"last_week"`
}
