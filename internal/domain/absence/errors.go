package absence

import "errors"

var (
	ErrRecordNotFound = errors.New("absence record not found")

	// ErrInvalidRecord rejects records whose end date precedes their start
	// date. Registration fails fast instead of silently computing a
	// distance-based day count.
	ErrInvalidRecord = errors.New("end date must not be before start date")

	ErrEmployeeNotFound = errors.New("employee referenced by record not found")
)
