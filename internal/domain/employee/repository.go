package employee

import "context"

// Repository defines data access for employees. Every method scopes rows by
// the owning userID.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string, userID string) (Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	Delete(ctx context.Context, id string, userID string) error

	// ListAll returns every employee for the user, newest first.
	ListAll(ctx context.Context, userID string) ([]Employee, error)

	// Search matches by full name, national ID or teacher code,
	// case-insensitive substring.
	Search(ctx context.Context, query string, userID string) ([]Employee, error)

	CountAll(ctx context.Context, userID string) (int, error)

	// DeleteAllForUser removes every employee owned by the user. Used by
	// the settings clear-data operation.
	DeleteAllForUser(ctx context.Context, userID string) error
}
