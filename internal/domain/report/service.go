package report

import "context"

// Service generates attendance and roster reports over the caller's data.
type Service interface {
	// Daily returns the single-day report. When the requested date falls on
	// a weekend the result is empty, matching the school's holiday rule.
	// Delegation adjustments apply here and nowhere else.
	Daily(ctx context.Context, req DailyReportRequest) ([]ReportRow, error)

	// Weekly walks forward from seven days before the reference date,
	// collecting at most five working days within a 30-day window.
	Weekly(ctx context.Context, referenceDate string) ([]ReportRow, error)

	// Range returns one row per working day in [start, end].
	Range(ctx context.Context, req RangeReportRequest) ([]ReportRow, error)

	// AllEmployees returns the full roster report.
	AllEmployees(ctx context.Context) ([]RosterRow, error)
}
