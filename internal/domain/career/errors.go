package career

import "errors"

var (
	ErrMilestoneNotFound = errors.New("career milestone not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
)
