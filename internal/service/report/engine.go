package report

import (
	"math"
	"time"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/madrasahq/school-hr-backend/internal/pkg/workcal"
)

// The functions in this file form the attendance aggregation engine: pure
// computations over an immutable snapshot of absence records. They never
// touch storage, never read the clock, and hold no state between calls, so
// concurrent callers with different snapshots cannot interfere.

// RecordsActiveOn returns every record whose interval covers the date.
func RecordsActiveOn(records []absence.Record, date time.Time) []absence.Record {
	var active []absence.Record
	for _, rec := range records {
		if rec.ActiveOn(date) {
			active = append(active, rec)
		}
	}
	return active
}

// CountActiveOn counts records of the given kind active on the date. It
// counts records, not distinct employees: two overlapping same-kind
// records for one employee both contribute.
func CountActiveOn(records []absence.Record, date time.Time, kind absence.Kind) int {
	count := 0
	for _, rec := range records {
		if rec.IsKind(kind) && rec.ActiveOn(date) {
			count++
		}
	}
	return count
}

// TotalDaysForEmployee sums the inclusive day count of every record of the
// given kind belonging to the employee. Overlapping spans are summed
// without deduplication. An employee with no records yields zero.
func TotalDaysForEmployee(records []absence.Record, employeeID string, kind absence.Kind) int {
	total := 0
	for _, rec := range records {
		if rec.EmployeeID != employeeID || !rec.IsKind(kind) {
			continue
		}
		total += absence.DaysInclusive(rec.StartDate, rec.EffectiveEnd())
	}
	return total
}

// DayCounts is the per-day output of DailySeries and RangeStats.
type DayCounts struct {
	Date     time.Time
	Absences int
	Leaves   int
}

// DailySeries emits absence and leave counts for every working day in
// [start, end].
func DailySeries(records []absence.Record, cal workcal.Calendar, start, end time.Time) ([]DayCounts, error) {
	days, err := cal.WorkingDaysBetween(start, end)
	if err != nil {
		return nil, err
	}

	series := make([]DayCounts, 0, len(days))
	for _, day := range days {
		series = append(series, DayCounts{
			Date:     day,
			Absences: CountActiveOn(records, day, absence.KindAbsence),
			Leaves:   CountActiveOn(records, day, absence.KindLeave),
		})
	}
	return series, nil
}

// RangeTotals aggregates records intersecting a date range: each
// intersecting record is counted once in the totals, and every calendar
// day of the clipped intersection contributes to the daily breakdown.
// Unlike DailySeries the breakdown is not weekend-filtered.
type RangeTotals struct {
	TotalAbsences int
	TotalLeaves   int
	Daily         []DayCounts
}

// RangeStats computes RangeTotals over [start, end].
func RangeStats(records []absence.Record, start, end time.Time) (RangeTotals, error) {
	start = absence.Day(start)
	end = absence.Day(end)
	if start.After(end) {
		return RangeTotals{}, workcal.ErrInvalidRange
	}

	totals := RangeTotals{}
	byDay := make(map[time.Time]*DayCounts)

	for _, rec := range records {
		recStart := absence.Day(rec.StartDate)
		recEnd := absence.Day(rec.EffectiveEnd())
		if recEnd.Before(start) || recStart.After(end) {
			continue
		}

		switch rec.Kind {
		case absence.KindAbsence:
			totals.TotalAbsences++
		case absence.KindLeave:
			totals.TotalLeaves++
		}

		from := maxDay(recStart, start)
		to := minDay(recEnd, end)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			counts, ok := byDay[d]
			if !ok {
				counts = &DayCounts{Date: d}
				byDay[d] = counts
			}
			switch rec.Kind {
			case absence.KindAbsence:
				counts.Absences++
			case absence.KindLeave:
				counts.Leaves++
			}
		}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if counts, ok := byDay[d]; ok {
			totals.Daily = append(totals.Daily, *counts)
		}
	}
	return totals, nil
}

// BuildDailyRow shapes one day of attendance figures. The delegation
// adjustment belongs to the single-day report only; weekly and ranged
// callers pass the zero value.
func BuildDailyRow(date time.Time, rosterSize int, records []absence.Record, delegation report.Delegation) report.ReportRow {
	adjusted := rosterSize + delegation.In - delegation.Out
	absent := CountActiveOn(records, date, absence.KindAbsence)
	onLeave := CountActiveOn(records, date, absence.KindLeave)

	rate := 0
	if adjusted > 0 {
		rate = int(math.Round(float64(absent) / float64(adjusted) * 100))
	}

	return report.ReportRow{
		Weekday:            date.Weekday().String(),
		Date:               date.Format("2006-01-02"),
		TotalEmployees:     adjusted,
		Present:            adjusted - absent - onLeave,
		Absent:             absent,
		OnLeave:            onLeave,
		AbsenceRatePercent: rate,
	}
}

// weeklyLookbackDays bounds the weekly report scan: at most 30 calendar
// days forward from the week-ago anchor, collecting up to 5 working days.
const (
	weeklyLookbackDays = 30
	weeklyRowTarget    = 5
)

// BuildWeeklyRows collects up to five working days starting seven days
// before the reference date. The scan is bounded, never infinite: if the
// window holds fewer than five working days the result is shorter.
func BuildWeeklyRows(rosterSize int, records []absence.Record, cal workcal.Calendar, referenceDate time.Time) []report.ReportRow {
	anchor := absence.Day(referenceDate).AddDate(0, 0, -7)

	rows := make([]report.ReportRow, 0, weeklyRowTarget)
	for offset := 0; offset < weeklyLookbackDays && len(rows) < weeklyRowTarget; offset++ {
		day := anchor.AddDate(0, 0, offset)
		if !cal.IsWorkingDay(day) {
			continue
		}
		rows = append(rows, BuildDailyRow(day, rosterSize, records, report.Delegation{}))
	}
	return rows
}

// BuildRangeRows emits one row per working day in [start, end]. No
// delegation adjustment applies.
func BuildRangeRows(rosterSize int, records []absence.Record, cal workcal.Calendar, start, end time.Time) ([]report.ReportRow, error) {
	days, err := cal.WorkingDaysBetween(start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]report.ReportRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, BuildDailyRow(day, rosterSize, records, report.Delegation{}))
	}
	return rows, nil
}

func maxDay(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDay(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
