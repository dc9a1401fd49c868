package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/dashboard"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	reportsvc "github.com/madrasahq/school-hr-backend/internal/service/report"
)

type DashboardServiceImpl struct {
	employeeRepo employee.Repository
	absenceRepo  absence.Repository
}

func NewDashboardService(employeeRepo employee.Repository, absenceRepo absence.Repository) dashboard.Service {
	return &DashboardServiceImpl{
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
	}
}

// getUserID extracts user_id from JWT claims
func (s *DashboardServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := absence.Day(time.Now())
	if date == "" {
		return now
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return now
	}
	return absence.Day(parsed)
}

// GetDashboard returns today's stats and the trailing-week summary,
// fetching both snapshots in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, referenceDate string) (*dashboard.DashboardResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	today := parseDate(referenceDate)
	weekStart := today.AddDate(0, 0, -6)

	var (
		rosterSize   int
		todayRecords []absence.Record
		weekRecords  []absence.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rosterSize, err = s.employeeRepo.CountAll(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		todayRecords, err = s.absenceRepo.ListOverlappingRange(gCtx, today, today, userID)
		return err
	})
	g.Go(func() error {
		var err error
		weekRecords, err = s.absenceRepo.ListOverlappingRange(gCtx, weekStart, today, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats, err := reportsvc.RangeStats(weekRecords, weekStart, today)
	if err != nil {
		return nil, err
	}

	daily := make([]dashboard.DayBreakdown, 0, len(stats.Daily))
	for _, day := range stats.Daily {
		daily = append(daily, dashboard.DayBreakdown{
			Date:     day.Date.Format("2006-01-02"),
			Absences: day.Absences,
			Leaves:   day.Leaves,
		})
	}

	return &dashboard.DashboardResponse{
		Today: buildTodayStats(rosterSize, todayRecords, today),
		LastWeek: dashboard.WeekSummaryResponse{
			TotalAbsences: stats.TotalAbsences,
			TotalLeaves:   stats.TotalLeaves,
			Daily:         daily,
		},
	}, nil
}

func (s *DashboardServiceImpl) GetTodayStats(ctx context.Context, referenceDate string) (*dashboard.TodayStatsResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	today := parseDate(referenceDate)

	rosterSize, err := s.employeeRepo.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.absenceRepo.ListOverlappingRange(ctx, today, today, userID)
	if err != nil {
		return nil, err
	}

	stats := buildTodayStats(rosterSize, records, today)
	return &stats, nil
}

// buildTodayStats shapes the headline cards. Absent counts distinct
// employees while on-leave counts records, matching the way the two cards
// have always read.
func buildTodayStats(rosterSize int, records []absence.Record, today time.Time) dashboard.TodayStatsResponse {
	absentEmployees := make(map[string]struct{})
	onLeave := 0
	for _, rec := range records {
		if !rec.ActiveOn(today) {
			continue
		}
		switch rec.Kind {
		case absence.KindAbsence:
			absentEmployees[rec.EmployeeID] = struct{}{}
		case absence.KindLeave:
			onLeave++
		}
	}

	absent := len(absentEmployees)
	return dashboard.TodayStatsResponse{
		TotalEmployees: rosterSize,
		PresentToday:   rosterSize - absent - onLeave,
		AbsentToday:    absent,
		OnLeaveToday:   onLeave,
		Date:           today.Format("2006-01-02"),
	}
}
