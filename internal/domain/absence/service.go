package absence

import "context"

// Service defines absence/leave registration operations.
type Service interface {
	Register(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]RecordResponse, error)

	// EmployeeStats returns total absence and leave days for one employee,
	// summed inclusively over all of their records.
	EmployeeStats(ctx context.Context, employeeID string) (EmployeeStatsResponse, error)
}
