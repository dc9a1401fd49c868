package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/domain/settings"
	"github.com/madrasahq/school-hr-backend/internal/pkg/excel"
	"github.com/madrasahq/school-hr-backend/internal/pkg/storage"
)

// Backup workbook sheet names. Restore accepts workbooks produced by
// Backup and nothing else.
const (
	sheetEmployees = "Employees"
	sheetAbsences  = "Absences"
	sheetSettings  = "Settings"
)

var employeeHeaders = []string{
	"id", "full_name", "teacher_code", "national_id", "birth_date",
	"specialization", "teaching_subject", "phone_number", "address", "marital_status",
}

var absenceHeaders = []string{
	"id", "employee_id", "kind", "leave_subtype", "educational_stage",
	"start_date", "end_date",
}

var settingsHeaders = []string{
	"school_name", "school_code", "manager_name", "administration_name",
	"deputy_manager", "academic_year",
}

type SettingsServiceImpl struct {
	settingsRepo settings.Repository
	employeeRepo employee.Repository
	absenceRepo  absence.Repository
	storage      storage.FileStorage
}

func NewSettingsService(settingsRepo settings.Repository, employeeRepo employee.Repository, absenceRepo absence.Repository, fileStorage storage.FileStorage) settings.Service {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
		storage:      fileStorage,
	}
}

// getUserID extracts user_id from JWT claims
func (s *SettingsServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	cfg, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			// A user who never saved settings gets an empty form, not 404.
			return settings.SettingsResponse{}, nil
		}
		return settings.SettingsResponse{}, err
	}
	return settings.ToSettingsResponse(cfg), nil
}

func (s *SettingsServiceImpl) Save(ctx context.Context, req settings.SaveSettingsRequest) (settings.SettingsResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	cfg, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{}, err
		}
		cfg = settings.SchoolSettings{ID: uuid.New().String(), UserID: userID}
	}

	cfg.SchoolName = req.SchoolName
	cfg.SchoolCode = req.SchoolCode
	cfg.ManagerName = req.ManagerName
	cfg.AdministrationName = req.AdministrationName
	cfg.DeputyManager = req.DeputyManager
	cfg.AcademicYear = req.AcademicYear

	saved, err := s.settingsRepo.Upsert(ctx, cfg)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.ToSettingsResponse(saved), nil
}

func (s *SettingsServiceImpl) UploadLogo(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", fmt.Errorf("unsupported logo format: %s", ext)
	}

	path := fmt.Sprintf("logos/%s%s", userID, ext)
	key, err := s.storage.Upload(ctx, file, path, header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return "", err
	}

	cfg, err := s.settingsRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return "", err
		}
		cfg = settings.SchoolSettings{ID: uuid.New().String(), UserID: userID}
	}
	cfg.LogoURL = &url

	if _, err := s.settingsRepo.Upsert(ctx, cfg); err != nil {
		return "", err
	}
	return url, nil
}

// Backup writes the user's full data set as a three-sheet xlsx workbook.
func (s *SettingsServiceImpl) Backup(ctx context.Context, w io.Writer) error {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return err
	}

	employees, err := s.employeeRepo.ListAll(ctx, userID)
	if err != nil {
		return err
	}

	records, err := s.absenceRepo.ListAll(ctx, userID)
	if err != nil {
		return err
	}

	empRows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		empRows = append(empRows, []string{
			emp.ID, emp.FullName, deref(emp.TeacherCode), emp.NationalID,
			formatDate(emp.BirthDate), deref(emp.Specialization),
			deref(emp.TeachingSubject), deref(emp.PhoneNumber),
			deref(emp.Address), deref(emp.MaritalStatus),
		})
	}

	recRows := make([][]string, 0, len(records))
	for _, rec := range records {
		recRows = append(recRows, []string{
			rec.ID, rec.EmployeeID, string(rec.Kind), deref(rec.LeaveSubtype),
			deref(rec.EducationalStage), rec.StartDate.Format("2006-01-02"),
			formatDate(rec.EndDate),
		})
	}

	var cfgRows [][]string
	cfg, err := s.settingsRepo.GetByUser(ctx, userID)
	if err == nil {
		cfgRows = [][]string{{
			deref(cfg.SchoolName), deref(cfg.SchoolCode), deref(cfg.ManagerName),
			deref(cfg.AdministrationName), deref(cfg.DeputyManager), deref(cfg.AcademicYear),
		}}
	} else if !errors.Is(err, settings.ErrSettingsNotFound) {
		return err
	}

	return excel.WriteWorkbook(w, []excel.Sheet{
		{Name: sheetEmployees, Headers: employeeHeaders, Rows: empRows},
		{Name: sheetAbsences, Headers: absenceHeaders, Rows: recRows},
		{Name: sheetSettings, Headers: settingsHeaders, Rows: cfgRows},
	})
}

// Restore re-registers rows from a backup workbook. Employee IDs from the
// backup are kept so absence rows keep pointing at the right employees.
// Individual bad rows are counted and skipped.
func (s *SettingsServiceImpl) Restore(ctx context.Context, r io.Reader) (settings.RestoreResult, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return settings.RestoreResult{}, err
	}

	sheets, err := excel.ReadWorkbook(r)
	if err != nil {
		return settings.RestoreResult{}, settings.ErrInvalidBackup
	}

	empSheet, okEmp := sheets[sheetEmployees]
	recSheet, okRec := sheets[sheetAbsences]
	if !okEmp || !okRec {
		return settings.RestoreResult{}, settings.ErrInvalidBackup
	}

	result := settings.RestoreResult{}

	for _, row := range empSheet.Rows {
		emp, ok := employeeFromRow(row)
		if !ok {
			result.Failed++
			continue
		}
		emp.UserID = userID
		if emp.ID == "" {
			emp.ID = uuid.New().String()
		}
		if _, err := s.employeeRepo.Create(ctx, emp); err != nil {
			result.Failed++
			continue
		}
		result.EmployeesRestored++
	}

	for _, row := range recSheet.Rows {
		rec, ok := recordFromRow(row)
		if !ok {
			result.Failed++
			continue
		}
		rec.UserID = userID
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if _, err := s.absenceRepo.Create(ctx, rec); err != nil {
			result.Failed++
			continue
		}
		result.AbsencesRestored++
	}

	if cfgSheet, ok := sheets[sheetSettings]; ok && len(cfgSheet.Rows) > 0 {
		req := settingsFromRow(cfgSheet.Rows[0])
		if _, err := s.Save(ctx, req); err == nil {
			result.SettingsRestored = true
		} else {
			result.Failed++
		}
	}

	return result, nil
}

func (s *SettingsServiceImpl) ClearData(ctx context.Context) error {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return err
	}

	// Absence rows reference employees, so they go first.
	if err := s.absenceRepo.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.employeeRepo.DeleteAllForUser(ctx, userID)
}

func employeeFromRow(row []string) (employee.Employee, bool) {
	if len(row) < 4 {
		return employee.Employee{}, false
	}
	row = padRow(row, len(employeeHeaders))

	emp := employee.Employee{
		ID:              strings.TrimSpace(row[0]),
		FullName:        strings.TrimSpace(row[1]),
		TeacherCode:     optional(row[2]),
		NationalID:      strings.TrimSpace(row[3]),
		Specialization:  optional(row[5]),
		TeachingSubject: optional(row[6]),
		PhoneNumber:     optional(row[7]),
		Address:         optional(row[8]),
		MaritalStatus:   optional(row[9]),
	}
	if emp.FullName == "" || emp.NationalID == "" {
		return employee.Employee{}, false
	}
	if d, err := time.Parse("2006-01-02", strings.TrimSpace(row[4])); err == nil {
		emp.BirthDate = &d
	}
	return emp, true
}

func recordFromRow(row []string) (absence.Record, bool) {
	if len(row) < 6 {
		return absence.Record{}, false
	}
	row = padRow(row, len(absenceHeaders))

	kind := absence.Kind(strings.TrimSpace(row[2]))
	if kind != absence.KindAbsence && kind != absence.KindLeave {
		return absence.Record{}, false
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(row[5]))
	if err != nil {
		return absence.Record{}, false
	}

	rec := absence.Record{
		ID:               strings.TrimSpace(row[0]),
		EmployeeID:       strings.TrimSpace(row[1]),
		Kind:             kind,
		LeaveSubtype:     optional(row[3]),
		EducationalStage: optional(row[4]),
		StartDate:        start,
	}
	if rec.EmployeeID == "" {
		return absence.Record{}, false
	}
	if end, err := time.Parse("2006-01-02", strings.TrimSpace(row[6])); err == nil {
		if end.Before(start) {
			return absence.Record{}, false
		}
		rec.EndDate = &end
	}
	return rec, true
}

func settingsFromRow(row []string) settings.SaveSettingsRequest {
	row = padRow(row, len(settingsHeaders))
	return settings.SaveSettingsRequest{
		SchoolName:         optional(row[0]),
		SchoolCode:         optional(row[1]),
		ManagerName:        optional(row[2]),
		AdministrationName: optional(row[3]),
		DeputyManager:      optional(row[4]),
		AcademicYear:       optional(row[5]),
	}
}

// padRow extends a short row with empty cells. excelize drops trailing
// empty cells when reading, so backup rows can come back shorter than the
// header.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
