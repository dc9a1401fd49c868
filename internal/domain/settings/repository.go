package settings

import "context"

// Repository stores one settings row per user.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (SchoolSettings, error)

	// Upsert inserts or updates the user's settings row.
	Upsert(ctx context.Context, s SchoolSettings) (SchoolSettings, error)
}
