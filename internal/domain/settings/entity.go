package settings

import "time"

// SchoolSettings is the single per-user configuration row for the school.
type SchoolSettings struct {
	ID                 string
	UserID             string
	SchoolName         *string
	SchoolCode         *string
	ManagerName        *string
	AdministrationName *string
	DeputyManager      *string
	AcademicYear       *string
	LogoURL            *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
