package employee

import "context"

// Service defines roster management operations.
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]EmployeeResponse, error)
	Search(ctx context.Context, query string) ([]EmployeeResponse, error)

	// Import registers employees from spreadsheet rows, continuing past
	// individual failures.
	Import(ctx context.Context, rows []CreateEmployeeRequest) (ImportResult, error)
}
