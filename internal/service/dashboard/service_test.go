package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
)

const testUserID = "user-1"

func authedContext(t *testing.T, userID string) context.Context {
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	require.NoError(t, tok.Set("type", "access"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func record(employeeID string, kind absence.Kind, start, end string) absence.Record {
	rec := absence.Record{
		EmployeeID: employeeID,
		Kind:       kind,
		StartDate:  date(start),
	}
	if end != "" {
		e := date(end)
		rec.EndDate = &e
	}
	return rec
}

type fakeEmployeeRepo struct {
	employee.Repository
	count int
}

func (f *fakeEmployeeRepo) CountAll(ctx context.Context, userID string) (int, error) {
	return f.count, nil
}

type fakeAbsenceRepo struct {
	absence.Repository
	records []absence.Record
}

func (f *fakeAbsenceRepo) ListOverlappingRange(ctx context.Context, start, end time.Time, userID string) ([]absence.Record, error) {
	var out []absence.Record
	for _, rec := range f.records {
		if !rec.StartDate.After(end) && !absence.Day(rec.EffectiveEnd()).Before(start) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestGetTodayStats(t *testing.T) {
	ctx := authedContext(t, testUserID)

	// emp-1 carries two overlapping absence records: counted once in the
	// absent card. emp-2 and emp-3 each have a leave record: counted per
	// record in the on-leave card.
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-12"),
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-11"),
		record("emp-2", absence.KindLeave, "2024-03-10", "2024-03-12"),
		record("emp-3", absence.KindLeave, "2024-03-11", ""),
	}
	svc := NewDashboardService(&fakeEmployeeRepo{count: 10}, &fakeAbsenceRepo{records: records})

	stats, err := svc.GetTodayStats(ctx, "2024-03-11")
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, 2, stats.OnLeaveToday)
	assert.Equal(t, 7, stats.PresentToday)
	assert.Equal(t, "2024-03-11", stats.Date)
}

func TestGetDashboard(t *testing.T) {
	ctx := authedContext(t, testUserID)

	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-12"),
		record("emp-2", absence.KindLeave, "2024-03-14", "2024-03-15"),
	}
	svc := NewDashboardService(&fakeEmployeeRepo{count: 5}, &fakeAbsenceRepo{records: records})

	data, err := svc.GetDashboard(ctx, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 5, data.Today.TotalEmployees)
	assert.Equal(t, 0, data.Today.AbsentToday)
	assert.Equal(t, 1, data.Today.OnLeaveToday)

	// Both records intersect the trailing week and count once each.
	assert.Equal(t, 1, data.LastWeek.TotalAbsences)
	assert.Equal(t, 1, data.LastWeek.TotalLeaves)

	require.Len(t, data.LastWeek.Daily, 4)
	assert.Equal(t, "2024-03-11", data.LastWeek.Daily[0].Date)
	assert.Equal(t, 1, data.LastWeek.Daily[0].Absences)
	assert.Equal(t, "2024-03-15", data.LastWeek.Daily[3].Date)
	assert.Equal(t, 1, data.LastWeek.Daily[3].Leaves)
}

func TestGetDashboardEmptyData(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := NewDashboardService(&fakeEmployeeRepo{count: 0}, &fakeAbsenceRepo{})

	data, err := svc.GetDashboard(ctx, "2024-03-11")
	require.NoError(t, err)

	assert.Equal(t, 0, data.Today.TotalEmployees)
	assert.Equal(t, 0, data.LastWeek.TotalAbsences)
	assert.Empty(t, data.LastWeek.Daily)
}

func TestGetTodayStatsMissingClaims(t *testing.T) {
	svc := NewDashboardService(&fakeEmployeeRepo{count: 1}, &fakeAbsenceRepo{})

	_, err := svc.GetTodayStats(context.Background(), "2024-03-11")
	assert.Error(t, err)
}
