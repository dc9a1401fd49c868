package dashboard

import "context"

// Service computes dashboard statistics over the caller's roster and
// absence records.
type Service interface {
	// GetDashboard returns today's stats and the last-week summary,
	// fetching the underlying snapshots concurrently.
	GetDashboard(ctx context.Context, referenceDate string) (*DashboardResponse, error)

	GetTodayStats(ctx context.Context, referenceDate string) (*TodayStatsResponse, error)
}
