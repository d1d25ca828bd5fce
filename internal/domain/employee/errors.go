package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrShiftNotFound    = errors.New("assigned shift does not exist")
	ErrEmailExists      = errors.New("email already registered")
)
