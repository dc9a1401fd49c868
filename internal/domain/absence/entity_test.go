package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"same day", "2024-03-10", "2024-03-10", 1},
		{"two days", "2024-03-10", "2024-03-11", 2},
		{"full week", "2024-03-10", "2024-03-16", 7},
		{"across month boundary", "2024-03-30", "2024-04-02", 4},
		{"across year boundary", "2023-12-30", "2024-01-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInclusive(day(tt.a), day(tt.b)))
		})
	}
}

func TestDaysInclusiveSymmetry(t *testing.T) {
	a, b := day("2024-03-10"), day("2024-03-16")
	assert.Equal(t, DaysInclusive(a, b), DaysInclusive(b, a))
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysInclusive(a, b))
}

func TestEffectiveEnd(t *testing.T) {
	end := day("2024-03-15")

	rec := Record{StartDate: day("2024-03-10"), EndDate: &end}
	assert.Equal(t, end, rec.EffectiveEnd())

	openEnded := Record{StartDate: day("2024-03-10")}
	assert.Equal(t, day("2024-03-10"), openEnded.EffectiveEnd())
}

func TestActiveOn(t *testing.T) {
	end := day("2024-03-12")
	rec := Record{StartDate: day("2024-03-10"), EndDate: &end}

	assert.False(t, rec.ActiveOn(day("2024-03-09")))
	assert.True(t, rec.ActiveOn(day("2024-03-10")))
	assert.True(t, rec.ActiveOn(day("2024-03-11")))
	assert.True(t, rec.ActiveOn(day("2024-03-12")))
	assert.False(t, rec.ActiveOn(day("2024-03-13")))
}

func TestActiveOnOpenEnded(t *testing.T) {
	rec := Record{StartDate: day("2024-03-10")}

	assert.True(t, rec.ActiveOn(day("2024-03-10")))
	assert.False(t, rec.ActiveOn(day("2024-03-11")))
}

func TestCreateRecordRequestValidate(t *testing.T) {
	subtype := "sick"
	unknown := "vacation"
	endBefore := "2024-03-01"

	tests := []struct {
		name    string
		req     CreateRecordRequest
		wantErr bool
	}{
		{
			"valid absence",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "absence", StartDate: "2024-03-10"},
			false,
		},
		{
			"valid leave with subtype",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "leave", LeaveSubtype: &subtype, StartDate: "2024-03-10"},
			false,
		},
		{
			"missing employee",
			CreateRecordRequest{Kind: "absence", StartDate: "2024-03-10"},
			true,
		},
		{
			"unknown kind",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "holiday", StartDate: "2024-03-10"},
			true,
		},
		{
			"leave without subtype",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "leave", StartDate: "2024-03-10"},
			true,
		},
		{
			"leave with unknown subtype",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "leave", LeaveSubtype: &unknown, StartDate: "2024-03-10"},
			true,
		},
		{
			"bad start date",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "absence", StartDate: "10/03/2024"},
			true,
		},
		{
			"bad end date",
			CreateRecordRequest{EmployeeID: "emp-1", Kind: "absence", StartDate: "2024-03-10", EndDate: &unknown},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	// An inverted span passes format validation; the service rejects it.
	req := CreateRecordRequest{EmployeeID: "emp-1", Kind: "absence", StartDate: "2024-03-10", EndDate: &endBefore}
	require.NoError(t, req.Validate())
	rec := req.ToRecord()
	require.NotNil(t, rec.EndDate)
	assert.True(t, rec.EndDate.Before(rec.StartDate))
}

func TestToRecordDropsSubtypeForAbsence(t *testing.T) {
	subtype := "sick"
	req := CreateRecordRequest{EmployeeID: "emp-1", Kind: "absence", LeaveSubtype: &subtype, StartDate: "2024-03-10"}

	rec := req.ToRecord()
	assert.Nil(t, rec.LeaveSubtype)
	assert.Equal(t, KindAbsence, rec.Kind)
}
