package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// getUserID extracts user_id from JWT claims
func (s *EmployeeServiceImpl) getUserID(ctx context.Context) (string, error) {
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := req.ToEmployee()
	emp.ID = uuid.New().String()
	emp.UserID = userID

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, id, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := req.ToEmployee()
	emp.ID = existing.ID
	emp.UserID = userID
	emp.CreatedAt = existing.CreatedAt

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id, userID)
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	emps, err := s.employeeRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return employee.ToEmployeeResponses(emps), nil
}

func (s *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	emps, err := s.employeeRepo.Search(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return employee.ToEmployeeResponses(emps), nil
}

// Import registers employees row by row. A bad row is recorded and skipped,
// the rest of the sheet still goes through.
func (s *EmployeeServiceImpl) Import(ctx context.Context, rows []employee.CreateEmployeeRequest) (employee.ImportResult, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return employee.ImportResult{}, err
	}

	result := employee.ImportResult{Processed: len(rows)}
	for i, req := range rows {
		if err := req.Validate(); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, employee.ImportRowError{
				Row:     i + 2, // 1-based, after the header row
				Message: err.Error(),
			})
			continue
		}

		emp := req.ToEmployee()
		emp.ID = uuid.New().String()
		emp.UserID = userID

		if _, err := s.employeeRepo.Create(ctx, emp); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, employee.ImportRowError{
				Row:     i + 2,
				Message: err.Error(),
			})
			continue
		}
		result.Succeeded++
	}
	return result, nil
}
