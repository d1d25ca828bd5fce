package session

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid or expired session token")
	ErrEmployeeNotFound = errors.New("employee not found")
)
