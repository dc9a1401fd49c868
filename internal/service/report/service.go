package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
	"github.com/madrasahq/school-hr-backend/internal/pkg/workcal"
)

type ReportServiceImpl struct {
	employeeRepo employee.Repository
	absenceRepo  absence.Repository
	cal          workcal.Calendar
}

func NewReportService(employeeRepo employee.Repository, absenceRepo absence.Repository) report.Service {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
		cal:          workcal.Default(),
	}
}

// getUserID extracts user_id from JWT claims
func (s *ReportServiceImpl) getUserID(ctx context.Context) (string, error) {
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

func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyReportRequest) ([]report.ReportRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	day := parseDate(req.Date)

	// The school is closed on weekends, so the daily report for a weekend
	// date is empty rather than an error.
	if !s.cal.IsWorkingDay(day) {
		return []report.ReportRow{}, nil
	}

	rosterSize, err := s.employeeRepo.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.absenceRepo.ListOverlappingRange(ctx, day, day, userID)
	if err != nil {
		return nil, err
	}

	delegation := report.Delegation{In: req.DelegatedIn, Out: req.DelegatedOut}
	return []report.ReportRow{BuildDailyRow(day, rosterSize, records, delegation)}, nil
}

func (s *ReportServiceImpl) Weekly(ctx context.Context, referenceDate string) ([]report.ReportRow, error) {
	if !validator.IsEmpty(referenceDate) {
		if _, ok := validator.IsValidDate(referenceDate); !ok {
			return nil, validator.ValidationErrors{validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	ref := parseDate(referenceDate)
	anchor := ref.AddDate(0, 0, -7)
	windowEnd := anchor.AddDate(0, 0, weeklyLookbackDays-1)

	rosterSize, err := s.employeeRepo.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.absenceRepo.ListOverlappingRange(ctx, anchor, windowEnd, userID)
	if err != nil {
		return nil, err
	}

	return BuildWeeklyRows(rosterSize, records, s.cal, ref), nil
}

func (s *ReportServiceImpl) Range(ctx context.Context, req report.RangeReportRequest) ([]report.ReportRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	start := parseDate(req.StartDate)
	end := parseDate(req.EndDate)
	if start.After(end) {
		return nil, workcal.ErrInvalidRange
	}

	rosterSize, err := s.employeeRepo.CountAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.absenceRepo.ListOverlappingRange(ctx, start, end, userID)
	if err != nil {
		return nil, err
	}

	return BuildRangeRows(rosterSize, records, s.cal, start, end)
}

func (s *ReportServiceImpl) AllEmployees(ctx context.Context) ([]report.RosterRow, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]report.RosterRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, report.RosterRow{
			FullName:        emp.FullName,
			TeacherCode:     deref(emp.TeacherCode),
			NationalID:      emp.NationalID,
			BirthDate:       formatDate(emp.BirthDate),
			Specialization:  deref(emp.Specialization),
			TeachingSubject: deref(emp.TeachingSubject),
			PhoneNumber:     deref(emp.PhoneNumber),
			Address:         deref(emp.Address),
			MaritalStatus:   deref(emp.MaritalStatus),
		})
	}
	return rows, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
