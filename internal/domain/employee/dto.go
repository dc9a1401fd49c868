package employee

import (
	"time"

	"github.com/madrasahq/school-hr-backend/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName        string  `json:"full_name"`
	TeacherCode     *string `json:"teacher_code,omitempty"`
	NationalID      string  `json:"national_id"`
	BirthDate       *string `json:"birth_date,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	TeachingSubject *string `json:"teaching_subject,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	Address         *string `json:"address,omitempty"`
	MaritalStatus   *string `json:"marital_status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	} else if !validator.IsNumeric(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must contain digits only",
		})
	}

	if r.BirthDate != nil && !validator.IsEmpty(*r.BirthDate) {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEmployee converts a validated request into an Employee.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	emp := Employee{
		FullName:        r.FullName,
		TeacherCode:     r.TeacherCode,
		NationalID:      r.NationalID,
		Specialization:  r.Specialization,
		TeachingSubject: r.TeachingSubject,
		PhoneNumber:     r.PhoneNumber,
		Address:         r.Address,
		MaritalStatus:   r.MaritalStatus,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if d, ok := validator.IsValidDate(*r.BirthDate); ok {
			emp.BirthDate = &d
		}
	}
	return emp
}

type UpdateEmployeeRequest struct {
	CreateEmployeeRequest
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	TeacherCode     *string `json:"teacher_code,omitempty"`
	NationalID      string  `json:"national_id"`
	BirthDate       *string `json:"birth_date,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	TeachingSubject *string `json:"teaching_subject,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	Address         *string `json:"address,omitempty"`
	MaritalStatus   *string `json:"marital_status,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToEmployeeResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              emp.ID,
		FullName:        emp.FullName,
		TeacherCode:     emp.TeacherCode,
		NationalID:      emp.NationalID,
		Specialization:  emp.Specialization,
		TeachingSubject: emp.TeachingSubject,
		PhoneNumber:     emp.PhoneNumber,
		Address:         emp.Address,
		MaritalStatus:   emp.MaritalStatus,
		CreatedAt:       emp.CreatedAt.Format(time.RFC3339),
	}
	if emp.BirthDate != nil {
		d := emp.BirthDate.Format("2006-01-02")
		resp.BirthDate = &d
	}
	return resp
}

func ToEmployeeResponses(emps []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		out = append(out, ToEmployeeResponse(emp))
	}
	return out
}

// ImportResult summarizes a bulk spreadsheet import.
type ImportResult struct {
	Processed int              `json:"processed"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}
