package report

import (
	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORTS
// ========================================

// Delegation adjusts a single day's headcount for staff temporarily
// assigned to or away from the school. It applies only to the daily
// report, never to weekly or ranged reports.
type Delegation struct {
	In  int `json:"delegated_in"`
	Out int `json:"delegated_out"`
}

// ReportRow is one working day of attendance figures.
type ReportRow struct {
	Weekday            string `json:"weekday"`
	Date               string `json:"date"`
	TotalEmployees     int    `json:"total_employees"`
	Present            int    `json:"present"`
	Absent             int    `json:"absent"`
	OnLeave            int    `json:"on_leave"`
	AbsenceRatePercent int    `json:"absence_rate_percent"`
}

type DailyReportRequest struct {
	// Date in YYYY-MM-DD; empty means today.
	Date         string `json:"date"`
	DelegatedIn  int    `json:"delegated_in"`
	DelegatedOut int    `json:"delegated_out"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.DelegatedIn < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delegated_in",
			Message: "delegated_in must not be negative",
		})
	}
	if r.DelegatedOut < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delegated_out",
			Message: "delegated_out must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// ROSTER REPORT
// ========================================

// RosterRow is one employee in the all-employees report.
type RosterRow struct {
	FullName        string `json:"full_name"`
	TeacherCode     string `json:"teacher_code"`
	NationalID      string `json:"national_id"`
	BirthDate       string `json:"birth_date"`
	Specialization  string `json:"specialization"`
	TeachingSubject string `json:"teaching_subject"`
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`
	MaritalStatus   string `json:"marital_status"`
}
