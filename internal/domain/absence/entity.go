package absence

import (
	"time"
)

type Kind string

const (
	KindAbsence Kind = "absence"
	KindLeave   Kind = "leave"
)

// Leave subtypes. Only meaningful when Kind = leave.
const (
	SubtypeCasual     = "casual"
	SubtypeSick       = "sick"
	SubtypeRegular    = "regular"
	SubtypeEmergency  = "emergency"
	SubtypeMaternity  = "maternity"
	SubtypePilgrimage = "pilgrimage"
	SubtypeStudy      = "study"
)

// LeaveSubtypes lists the accepted leave subtype values.
var LeaveSubtypes = []string{
	SubtypeCasual, SubtypeSick, SubtypeRegular,
	SubtypeEmergency, SubtypeMaternity, SubtypePilgrimage, SubtypeStudy,
}

// Record is one reported absence or leave span for one employee.
// StartDate is always set; a nil EndDate means a single-day record.
type Record struct {
	ID               string
	UserID           string
	EmployeeID       string
	Kind             Kind
	LeaveSubtype     *string
	EducationalStage *string
	StartDate        time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

// EffectiveEnd returns EndDate when present, else StartDate.
func (r Record) EffectiveEnd() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.StartDate
}

// IsKind reports whether the record carries the given kind tag.
func (r Record) IsKind(k Kind) bool {
	return r.Kind == k
}

// ActiveOn reports whether the record covers the given calendar day,
// i.e. StartDate <= d <= EffectiveEnd, comparing dates only.
func (r Record) ActiveOn(d time.Time) bool {
	day := Day(d)
	return !day.Before(Day(r.StartDate)) && !day.After(Day(r.EffectiveEnd()))
}

// Day truncates t to a calendar date in UTC. All interval arithmetic in
// this package works on Day-normalized values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days in [a, b] inclusive. The count is
// based on the absolute difference, so DaysInclusive(a, b) equals
// DaysInclusive(b, a) and a same-day span counts as 1. Inverted intervals
// are rejected before records are stored; see ErrInvalidRecord.
func DaysInclusive(a, b time.Time) int {
	d := Day(b).Sub(Day(a))
	if d < 0 {
		d = -d
	}
	return int(d.Hours()/24) + 1
}
