package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, full_name, teacher_code, national_id, birth_date,
	specialization, teaching_subject, phone_number, address, marital_status,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.FullName,
		&emp.TeacherCode,
		&emp.NationalID,
		&emp.BirthDate,
		&emp.Specialization,
		&emp.TeachingSubject,
		&emp.PhoneNumber,
		&emp.Address,
		&emp.MaritalStatus,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	return emp, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()

	var emps []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		emps = append(emps, emp)
	}
	return emps, rows.Err()
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, full_name, teacher_code, national_id, birth_date,
			specialization, teaching_subject, phone_number, address, marital_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.UserID,
		emp.FullName,
		emp.TeacherCode,
		emp.NationalID,
		emp.BirthDate,
		emp.Specialization,
		emp.TeachingSubject,
		emp.PhoneNumber,
		emp.Address,
		emp.MaritalStatus,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "national_id") {
			return employee.Employee{}, employee.ErrNationalIDExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND user_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, teacher_code = $2, national_id = $3, birth_date = $4,
			specialization = $5, teaching_subject = $6, phone_number = $7,
			address = $8, marital_status = $9, updated_at = NOW()
		WHERE id = $10 AND user_id = $11
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FullName,
		emp.TeacherCode,
		emp.NationalID,
		emp.BirthDate,
		emp.Specialization,
		emp.TeachingSubject,
		emp.PhoneNumber,
		emp.Address,
		emp.MaritalStatus,
		emp.ID,
		emp.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.Repository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ListAll implements employee.Repository.
func (r *employeeRepositoryImpl) ListAll(ctx context.Context, userID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// Search implements employee.Repository.
func (r *employeeRepositoryImpl) Search(ctx context.Context, search string, userID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1
		  AND (full_name ILIKE $2 OR national_id ILIKE $2 OR teacher_code ILIKE $2)
		ORDER BY full_name`

	rows, err := q.Query(ctx, query, userID, "%"+search+"%")
	if err != nil {
		return nil, err
	}
	return collectEmployees(rows)
}

// CountAll implements employee.Repository.
func (r *employeeRepositoryImpl) CountAll(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAllForUser implements employee.Repository.
func (r *employeeRepositoryImpl) DeleteAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE user_id = $1`, userID)
	return err
}
