package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("school settings not configured")
	ErrInvalidBackup    = errors.New("backup workbook is missing required sheets")
)
