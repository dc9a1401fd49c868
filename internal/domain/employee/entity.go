package employee

import "time"

// Employee is one staff member on the school roster.
type Employee struct {
	ID              string
	UserID          string
	FullName        string
	TeacherCode     *string
	NationalID      string
	BirthDate       *time.Time
	Specialization  *string
	TeachingSubject *string
	PhoneNumber     *string
	Address         *string
	MaritalStatus   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
