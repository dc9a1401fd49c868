package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/madrasahq/school-hr-backend/internal/domain/settings"
	"github.com/madrasahq/school-hr-backend/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

const settingsColumns = `id, user_id, school_name, school_code, manager_name,
	administration_name, deputy_manager, academic_year, logo_url, created_at, updated_at`

func scanSettings(row pgx.Row) (settings.SchoolSettings, error) {
	var s settings.SchoolSettings
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.SchoolName,
		&s.SchoolCode,
		&s.ManagerName,
		&s.AdministrationName,
		&s.DeputyManager,
		&s.AcademicYear,
		&s.LogoURL,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// GetByUser implements settings.Repository.
func (r *settingsRepositoryImpl) GetByUser(ctx context.Context, userID string) (settings.SchoolSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM school_settings WHERE user_id = $1`

	s, err := scanSettings(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.SchoolSettings{}, settings.ErrSettingsNotFound
		}
		return settings.SchoolSettings{}, err
	}
	return s, nil
}

// Upsert implements settings.Repository. One settings row per user,
// enforced by the unique index on user_id.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.SchoolSettings) (settings.SchoolSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO school_settings (
			id, user_id, school_name, school_code, manager_name,
			administration_name, deputy_manager, academic_year, logo_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET school_name = EXCLUDED.school_name,
			school_code = EXCLUDED.school_code,
			manager_name = EXCLUDED.manager_name,
			administration_name = EXCLUDED.administration_name,
			deputy_manager = EXCLUDED.deputy_manager,
			academic_year = EXCLUDED.academic_year,
			logo_url = EXCLUDED.logo_url,
			updated_at = NOW()
		RETURNING ` + settingsColumns

	saved, err := scanSettings(q.QueryRow(ctx, query,
		s.ID,
		s.UserID,
		s.SchoolName,
		s.SchoolCode,
		s.ManagerName,
		s.AdministrationName,
		s.DeputyManager,
		s.AcademicYear,
		s.LogoURL,
	))
	if err != nil {
		return settings.SchoolSettings{}, err
	}
	return saved, nil
}
