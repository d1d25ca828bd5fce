package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrEmployeeNotFound = errors.New("employee not found")
)
