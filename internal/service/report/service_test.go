package report

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
	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
	"github.com/madrasahq/school-hr-backend/internal/pkg/workcal"
)

const testUserID = "user-1"

func authedContext(t *testing.T, userID string) context.Context {
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	require.NoError(t, tok.Set("type", "access"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

type fakeEmployeeRepo struct {
	employee.Repository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) CountAll(ctx context.Context, userID string) (int, error) {
	return len(f.employees), nil
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context, userID string) ([]employee.Employee, error) {
	return f.employees, nil
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

func newTestService(employees []employee.Employee, records []absence.Record) report.Service {
	return NewReportService(
		&fakeEmployeeRepo{employees: employees},
		&fakeAbsenceRepo{records: records},
	)
}

func roster(n int) []employee.Employee {
	emps := make([]employee.Employee, n)
	for i := range emps {
		emps[i] = employee.Employee{ID: string(rune('a' + i)), UserID: testUserID}
	}
	return emps
}

func TestDailyReport(t *testing.T) {
	ctx := authedContext(t, testUserID)
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-11"),
	}
	svc := newTestService(roster(3), records)

	rows, err := svc.Daily(ctx, report.DailyReportRequest{Date: "2024-03-11"})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].TotalEmployees)
	assert.Equal(t, 2, rows[0].Present)
	assert.Equal(t, 1, rows[0].Absent)
	assert.Equal(t, 33, rows[0].AbsenceRatePercent)
}

func TestDailyReportWeekendIsEmpty(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(3), nil)

	// 2024-03-15 is a Friday.
	rows, err := svc.Daily(ctx, report.DailyReportRequest{Date: "2024-03-15"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDailyReportDelegation(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(50), nil)

	rows, err := svc.Daily(ctx, report.DailyReportRequest{
		Date:         "2024-03-11",
		DelegatedIn:  2,
		DelegatedOut: 1,
	})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 51, rows[0].TotalEmployees)
	assert.Equal(t, 51, rows[0].Present)
}

func TestDailyReportRejectsNegativeDelegation(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(3), nil)

	_, err := svc.Daily(ctx, report.DailyReportRequest{Date: "2024-03-11", DelegatedIn: -1})
	assert.Error(t, err)
}

func TestWeeklyReport(t *testing.T) {
	ctx := authedContext(t, testUserID)
	records := []absence.Record{
		record("emp-1", absence.KindLeave, "2024-03-11", "2024-03-14"),
	}
	svc := newTestService(roster(10), records)

	rows, err := svc.Weekly(ctx, "2024-03-18")
	require.NoError(t, err)

	require.Len(t, rows, 5)
	assert.Equal(t, "2024-03-11", rows[0].Date)
	assert.Equal(t, 1, rows[0].OnLeave)
	assert.Equal(t, "2024-03-17", rows[4].Date)
	assert.Equal(t, 0, rows[4].OnLeave)
}

func TestWeeklyReportRejectsMalformedDate(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(10), nil)

	_, err := svc.Weekly(ctx, "18-03-2024")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date", verrs[0].Field)
}

func TestRangeReport(t *testing.T) {
	ctx := authedContext(t, testUserID)
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-14"),
	}
	svc := newTestService(roster(5), records)

	rows, err := svc.Range(ctx, report.RangeReportRequest{
		StartDate: "2024-03-10",
		EndDate:   "2024-03-14",
	})
	require.NoError(t, err)

	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Equal(t, 1, row.Absent)
	}
}

func TestRangeReportInvertedRange(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(5), nil)

	_, err := svc.Range(ctx, report.RangeReportRequest{
		StartDate: "2024-03-14",
		EndDate:   "2024-03-10",
	})
	assert.ErrorIs(t, err, workcal.ErrInvalidRange)
}

func TestRangeReportWeekendOnly(t *testing.T) {
	ctx := authedContext(t, testUserID)
	svc := newTestService(roster(5), nil)

	// Friday through Saturday.
	rows, err := svc.Range(ctx, report.RangeReportRequest{
		StartDate: "2024-03-15",
		EndDate:   "2024-03-16",
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAllEmployeesReport(t *testing.T) {
	ctx := authedContext(t, testUserID)
	code := "T-0001"
	birth := date("1990-05-01")
	svc := newTestService([]employee.Employee{
		{ID: "emp-1", FullName: "Ahmad Nasser", TeacherCode: &code, NationalID: "123", BirthDate: &birth},
		{ID: "emp-2", FullName: "Layla Haddad", NationalID: "456"},
	}, nil)

	rows, err := svc.AllEmployees(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Ahmad Nasser", rows[0].FullName)
	assert.Equal(t, "T-0001", rows[0].TeacherCode)
	assert.Equal(t, "1990-05-01", rows[0].BirthDate)
	assert.Equal(t, "", rows[1].TeacherCode)
}

func TestMissingClaims(t *testing.T) {
	svc := newTestService(roster(3), nil)

	_, err := svc.Daily(context.Background(), report.DailyReportRequest{Date: "2024-03-11"})
	assert.Error(t, err)
}
