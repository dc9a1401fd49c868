package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `a.id, a.user_id, a.employee_id, a.kind, a.leave_subtype,
	a.educational_stage, a.start_date, a.end_date, a.created_at, a.updated_at`

func scanRecord(row pgx.Row, withName bool) (absence.Record, error) {
	var rec absence.Record
	dest := []interface{}{
		&rec.ID,
		&rec.UserID,
		&rec.EmployeeID,
		&rec.Kind,
		&rec.LeaveSubtype,
		&rec.EducationalStage,
		&rec.StartDate,
		&rec.EndDate,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	}
	if withName {
		dest = append(dest, &rec.EmployeeName)
	}
	err := row.Scan(dest...)
	return rec, err
}

func collectRecords(rows pgx.Rows, withName bool) ([]absence.Record, error) {
	defer rows.Close()

	var recs []absence.Record
	for rows.Next() {
		rec, err := scanRecord(rows, withName)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Create implements absence.Repository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, rec absence.Record) (absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences AS a (
			id, user_id, employee_id, kind, leave_subtype, educational_stage,
			start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + absenceColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.EmployeeID,
		rec.Kind,
		rec.LeaveSubtype,
		rec.EducationalStage,
		rec.StartDate,
		rec.EndDate,
	), false)
	if err != nil {
		return absence.Record{}, err
	}
	return created, nil
}

// GetByID implements absence.Repository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM absences a WHERE a.id = $1 AND a.user_id = $2`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, userID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Record{}, absence.ErrRecordNotFound
		}
		return absence.Record{}, err
	}
	return rec, nil
}

// Update implements absence.Repository.
func (r *absenceRepositoryImpl) Update(ctx context.Context, rec absence.Record) (absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences AS a
		SET employee_id = $1, kind = $2, leave_subtype = $3, educational_stage = $4,
			start_date = $5, end_date = $6, updated_at = NOW()
		WHERE a.id = $7 AND a.user_id = $8
		RETURNING ` + absenceColumns

	updated, err := scanRecord(q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Kind,
		rec.LeaveSubtype,
		rec.EducationalStage,
		rec.StartDate,
		rec.EndDate,
		rec.ID,
		rec.UserID,
	), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Record{}, absence.ErrRecordNotFound
		}
		return absence.Record{}, err
	}
	return updated, nil
}

// Delete implements absence.Repository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrRecordNotFound
	}
	return nil
}

// ListAll implements absence.Repository.
func (r *absenceRepositoryImpl) ListAll(ctx context.Context, userID string) ([]absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `, e.full_name
		FROM absences a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows, true)
}

// ListByEmployee implements absence.Repository.
func (r *absenceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, userID string) ([]absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		WHERE a.employee_id = $1 AND a.user_id = $2
		ORDER BY a.start_date DESC`

	rows, err := q.Query(ctx, query, employeeID, userID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows, false)
}

// ListOverlappingRange implements absence.Repository. A record overlaps
// when its start is not after the range end and its effective end (end
// date, or start date for single-day records) is not before the range
// start.
func (r *absenceRepositoryImpl) ListOverlappingRange(ctx context.Context, start, end time.Time, userID string) ([]absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences a
		WHERE a.user_id = $1
		  AND a.start_date <= $3
		  AND COALESCE(a.end_date, a.start_date) >= $2
		ORDER BY a.start_date`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows, false)
}

// DeleteAllForUser implements absence.Repository.
func (r *absenceRepositoryImpl) DeleteAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM absences WHERE user_id = $1`, userID)
	return err
}
