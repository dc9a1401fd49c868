package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/madrasahq/school-hr-backend/internal/pkg/workcal"
)

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

func TestCountActiveOn(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-12"),
		record("emp-2", absence.KindLeave, "2024-03-11", "2024-03-15"),
		record("emp-3", absence.KindAbsence, "2024-03-13", ""),
	}

	assert.Equal(t, 1, CountActiveOn(records, date("2024-03-10"), absence.KindAbsence))
	assert.Equal(t, 1, CountActiveOn(records, date("2024-03-11"), absence.KindAbsence))
	assert.Equal(t, 1, CountActiveOn(records, date("2024-03-11"), absence.KindLeave))
	assert.Equal(t, 1, CountActiveOn(records, date("2024-03-13"), absence.KindAbsence))
	assert.Equal(t, 0, CountActiveOn(records, date("2024-03-14"), absence.KindAbsence))
	assert.Equal(t, 0, CountActiveOn(records, date("2024-03-09"), absence.KindAbsence))
}

func TestCountActiveOnDoesNotDeduplicateEmployees(t *testing.T) {
	// Two overlapping absence records for the same employee both count.
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-12"),
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-13"),
	}

	assert.Equal(t, 2, CountActiveOn(records, date("2024-03-11"), absence.KindAbsence))
}

func TestCountActiveOnOpenEndedRecord(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindLeave, "2024-03-13", ""),
	}

	// An open-ended record is active on its start date only.
	assert.Equal(t, 1, CountActiveOn(records, date("2024-03-13"), absence.KindLeave))
	assert.Equal(t, 0, CountActiveOn(records, date("2024-03-14"), absence.KindLeave))
}

func TestTotalDaysForEmployee(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-12"),
		record("emp-1", absence.KindAbsence, "2024-03-12", "2024-03-13"),
		record("emp-1", absence.KindLeave, "2024-03-20", ""),
		record("emp-2", absence.KindAbsence, "2024-03-10", "2024-03-10"),
	}

	// 3 days plus 2 days, overlap on the 12th counted twice.
	assert.Equal(t, 5, TotalDaysForEmployee(records, "emp-1", absence.KindAbsence))
	// Open-ended leave counts a single day.
	assert.Equal(t, 1, TotalDaysForEmployee(records, "emp-1", absence.KindLeave))
	assert.Equal(t, 1, TotalDaysForEmployee(records, "emp-2", absence.KindAbsence))
	assert.Equal(t, 0, TotalDaysForEmployee(records, "emp-3", absence.KindAbsence))
}

func TestBuildDailyRow(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-11"),
	}

	row := BuildDailyRow(date("2024-03-11"), 3, records, report.Delegation{})

	assert.Equal(t, "Monday", row.Weekday)
	assert.Equal(t, "2024-03-11", row.Date)
	assert.Equal(t, 3, row.TotalEmployees)
	assert.Equal(t, 2, row.Present)
	assert.Equal(t, 1, row.Absent)
	assert.Equal(t, 0, row.OnLeave)
	assert.Equal(t, 33, row.AbsenceRatePercent)
}

func TestBuildDailyRowDelegation(t *testing.T) {
	row := BuildDailyRow(date("2024-03-11"), 50, nil, report.Delegation{In: 2, Out: 1})

	assert.Equal(t, 51, row.TotalEmployees)
	assert.Equal(t, 51, row.Present)
	assert.Equal(t, 0, row.AbsenceRatePercent)
}

func TestBuildDailyRowEmptyRoster(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-11", "2024-03-11"),
	}

	row := BuildDailyRow(date("2024-03-11"), 0, records, report.Delegation{})

	assert.Equal(t, 0, row.TotalEmployees)
	assert.Equal(t, 0, row.AbsenceRatePercent)
	assert.Equal(t, -1, row.Present)
}

func TestBuildWeeklyRowsCollectsFiveWorkingDays(t *testing.T) {
	cal := workcal.Default()

	// Reference Monday 2024-03-18: anchor is Monday the 11th, the five
	// working days are Mon-Thu plus Sunday (Fri/Sat skipped).
	rows := BuildWeeklyRows(10, nil, cal, date("2024-03-18"))

	require.Len(t, rows, 5)
	assert.Equal(t, "2024-03-11", rows[0].Date)
	assert.Equal(t, "2024-03-12", rows[1].Date)
	assert.Equal(t, "2024-03-13", rows[2].Date)
	assert.Equal(t, "2024-03-14", rows[3].Date)
	assert.Equal(t, "2024-03-17", rows[4].Date)
}

func TestBuildWeeklyRowsShortWhenWindowLacksWorkingDays(t *testing.T) {
	// Only Sundays count as working days. The 30-day window starting at
	// Monday 2024-03-11 holds four Sundays, so the scan stops at the
	// window edge with four rows instead of five.
	cal := workcal.New(
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)

	rows := BuildWeeklyRows(10, nil, cal, date("2024-03-18"))

	require.Len(t, rows, 4)
	assert.Equal(t, "2024-03-17", rows[0].Date)
	assert.Equal(t, "2024-03-24", rows[1].Date)
	assert.Equal(t, "2024-03-31", rows[2].Date)
	assert.Equal(t, "2024-04-07", rows[3].Date)
}

func TestBuildWeeklyRowsEmptyWhenNoWorkingDays(t *testing.T) {
	cal := workcal.New(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)

	rows := BuildWeeklyRows(10, nil, cal, date("2024-03-18"))

	assert.Empty(t, rows)
}

func TestBuildRangeRows(t *testing.T) {
	cal := workcal.Default()
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-14"),
	}

	rows, err := BuildRangeRows(5, records, cal, date("2024-03-10"), date("2024-03-14"))
	require.NoError(t, err)

	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Equal(t, 1, row.Absent)
		assert.Equal(t, 20, row.AbsenceRatePercent)
	}
}

func TestBuildRangeRowsWeekendOnly(t *testing.T) {
	cal := workcal.Default()

	// Friday through Saturday produces no rows.
	rows, err := BuildRangeRows(5, nil, cal, date("2024-03-15"), date("2024-03-16"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildRangeRowsInvalidRange(t *testing.T) {
	cal := workcal.Default()

	_, err := BuildRangeRows(5, nil, cal, date("2024-03-14"), date("2024-03-10"))
	assert.ErrorIs(t, err, workcal.ErrInvalidRange)
}

func TestDailySeriesSkipsWeekend(t *testing.T) {
	cal := workcal.Default()
	records := []absence.Record{
		record("emp-1", absence.KindLeave, "2024-03-14", "2024-03-17"),
	}

	series, err := DailySeries(records, cal, date("2024-03-14"), date("2024-03-17"))
	require.NoError(t, err)

	// Thursday and Sunday only.
	require.Len(t, series, 2)
	assert.Equal(t, date("2024-03-14"), series[0].Date)
	assert.Equal(t, 1, series[0].Leaves)
	assert.Equal(t, date("2024-03-17"), series[1].Date)
	assert.Equal(t, 1, series[1].Leaves)
}

func TestRangeStats(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-12"),
		record("emp-2", absence.KindLeave, "2024-03-12", "2024-03-20"),
		record("emp-3", absence.KindAbsence, "2024-04-01", "2024-04-02"),
	}

	stats, err := RangeStats(records, date("2024-03-11"), date("2024-03-13"))
	require.NoError(t, err)

	// Records intersecting the range count once regardless of span.
	assert.Equal(t, 1, stats.TotalAbsences)
	assert.Equal(t, 1, stats.TotalLeaves)

	require.Len(t, stats.Daily, 3)
	assert.Equal(t, DayCounts{Date: date("2024-03-11"), Absences: 1}, stats.Daily[0])
	assert.Equal(t, DayCounts{Date: date("2024-03-12"), Absences: 1, Leaves: 1}, stats.Daily[1])
	assert.Equal(t, DayCounts{Date: date("2024-03-13"), Leaves: 1}, stats.Daily[2])
}

func TestRangeStatsClipsToRange(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-01", "2024-03-31"),
	}

	stats, err := RangeStats(records, date("2024-03-15"), date("2024-03-16"))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalAbsences)
	// The breakdown covers calendar days, weekends included.
	require.Len(t, stats.Daily, 2)
	assert.Equal(t, date("2024-03-15"), stats.Daily[0].Date)
	assert.Equal(t, date("2024-03-16"), stats.Daily[1].Date)
}

func TestRangeStatsInvalidRange(t *testing.T) {
	_, err := RangeStats(nil, date("2024-03-14"), date("2024-03-10"))
	assert.ErrorIs(t, err, workcal.ErrInvalidRange)
}

func TestRecordsActiveOn(t *testing.T) {
	records := []absence.Record{
		record("emp-1", absence.KindAbsence, "2024-03-10", "2024-03-12"),
		record("emp-2", absence.KindLeave, "2024-03-11", ""),
	}

	active := RecordsActiveOn(records, date("2024-03-11"))
	require.Len(t, active, 2)

	active = RecordsActiveOn(records, date("2024-03-12"))
	require.Len(t, active, 1)
	assert.Equal(t, "emp-1", active[0].EmployeeID)
}
