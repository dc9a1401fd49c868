package settings

// ========================================
// SETTINGS DTOs
// ========================================

type SaveSettingsRequest struct {
	SchoolName         *string `json:"school_name,omitempty"`
	SchoolCode         *string `json:"school_code,omitempty"`
	ManagerName        *string `json:"manager_name,omitempty"`
	AdministrationName *string `json:"administration_name,omitempty"`
	DeputyManager      *string `json:"deputy_manager,omitempty"`
	AcademicYear       *string `json:"academic_year,omitempty"`
}

type SettingsResponse struct {
	SchoolName         *string `json:"school_name,omitempty"`
	SchoolCode         *string `json:"school_code,omitempty"`
	ManagerName        *string `json:"manager_name,omitempty"`
	AdministrationName *string `json:"administration_name,omitempty"`
	DeputyManager      *string `json:"deputy_manager,omitempty"`
	AcademicYear       *string `json:"academic_year,omitempty"`
	LogoURL            *string `json:"logo_url,omitempty"`
}

func ToSettingsResponse(s SchoolSettings) SettingsResponse {
	return SettingsResponse{
		SchoolName:         s.SchoolName,
		SchoolCode:         s.SchoolCode,
		ManagerName:        s.ManagerName,
		AdministrationName: s.AdministrationName,
		DeputyManager:      s.DeputyManager,
		AcademicYear:       s.AcademicYear,
		LogoURL:            s.LogoURL,
	}
}

// RestoreResult summarizes a backup restore.
type RestoreResult struct {
	EmployeesRestored int  `json:"employees_restored"`
	AbsencesRestored  int  `json:"absences_restored"`
	SettingsRestored  bool `json:"settings_restored"`
	Failed            int  `json:"failed"`
}
