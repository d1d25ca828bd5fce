package assistant

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNoFile           = errors.New("document has no attached file")
	ErrEmployeeNotFound = errors.New("employee not found")
)
