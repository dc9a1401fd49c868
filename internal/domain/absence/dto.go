package absence

import (
	"time"

	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
)

// ========================================
// ABSENCE DTOs
// ========================================

type CreateRecordRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Kind             string  `json:"kind"`
	LeaveSubtype     *string `json:"leave_subtype,omitempty"`
	EducationalStage *string `json:"educational_stage,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Kind != string(KindAbsence) && r.Kind != string(KindLeave) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be either 'absence' or 'leave'",
		})
	}

	if r.Kind == string(KindLeave) {
		if r.LeaveSubtype == nil || validator.IsEmpty(*r.LeaveSubtype) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_subtype",
				Message: "leave_subtype is required for leave records",
			})
		} else if !validator.IsInSlice(*r.LeaveSubtype, LeaveSubtypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_subtype",
				Message: "unknown leave subtype",
			})
		}
	}

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

	if r.EndDate != nil && !validator.IsEmpty(*r.EndDate) {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecord converts a validated request into a Record. Call Validate first;
// date parsing here assumes well-formed input.
func (r *CreateRecordRequest) ToRecord() Record {
	start, _ := time.Parse("2006-01-02", r.StartDate)

	rec := Record{
		EmployeeID:       r.EmployeeID,
		Kind:             Kind(r.Kind),
		EducationalStage: r.EducationalStage,
		StartDate:        start,
	}
	if r.Kind == string(KindLeave) {
		rec.LeaveSubtype = r.LeaveSubtype
	}
	if r.EndDate != nil && *r.EndDate != "" {
		end, _ := time.Parse("2006-01-02", *r.EndDate)
		rec.EndDate = &end
	}
	return rec
}

type UpdateRecordRequest struct {
	CreateRecordRequest
}

type RecordResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Kind             string  `json:"kind"`
	LeaveSubtype     *string `json:"leave_subtype,omitempty"`
	EducationalStage *string `json:"educational_stage,omitempty"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func ToRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     rec.EmployeeName,
		Kind:             string(rec.Kind),
		LeaveSubtype:     rec.LeaveSubtype,
		EducationalStage: rec.EducationalStage,
		StartDate:        rec.StartDate.Format("2006-01-02"),
		CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.EndDate != nil {
		end := rec.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func ToRecordResponses(recs []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToRecordResponse(rec))
	}
	return out
}

// EmployeeStatsResponse carries total non-attendance day counts for one
// employee, split by kind. Overlapping records are summed without
// deduplication.
type EmployeeStatsResponse struct {
	EmployeeID  string `json:"employee_id"`
	AbsenceDays int    `json:"absence_days"`
	LeaveDays   int    `json:"leave_days"`
}
