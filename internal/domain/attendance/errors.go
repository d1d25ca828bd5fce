package attendance

import "errors"

var (
	ErrEntryNotFound    = errors.New("attendance entry not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
