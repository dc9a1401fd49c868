package settings

import (
	"context"
	"io"
	"mime/multipart"
)

// Service manages school configuration and the data-management operations
// that live on the settings screen: backup, restore and clear.
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Save(ctx context.Context, req SaveSettingsRequest) (SettingsResponse, error)

	// UploadLogo stores the school logo and returns its public URL.
	UploadLogo(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)

	// Backup writes an xlsx workbook with Employees, Absences and Settings
	// sheets to w.
	Backup(ctx context.Context, w io.Writer) error

	// Restore re-registers rows from a backup workbook, continuing past
	// individual row failures.
	Restore(ctx context.Context, r io.Reader) (RestoreResult, error)

	// ClearData deletes every employee and absence record the user owns.
	ClearData(ctx context.Context) error
}
