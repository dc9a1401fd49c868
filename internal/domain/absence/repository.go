package absence

import (
	"context"
	"time"
)

// Repository defines data access for absence records. Every method scopes
// rows by the owning userID.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)

	GetByID(ctx context.Context, id string, userID string) (Record, error)

	Update(ctx context.Context, rec Record) (Record, error)

	Delete(ctx context.Context, id string, userID string) error

	// ListAll returns every record for the user, newest first, with the
	// employee name joined in.
	ListAll(ctx context.Context, userID string) ([]Record, error)

	ListByEmployee(ctx context.Context, employeeID string, userID string) ([]Record, error)

	// ListOverlappingRange returns records whose effective interval
	// intersects [start, end].
	ListOverlappingRange(ctx context.Context, start, end time.Time, userID string) ([]Record, error)

	// DeleteAllForUser removes every record owned by the user. Used by the
	// settings clear-data operation.
	DeleteAllForUser(ctx context.Context, userID string) error
}
