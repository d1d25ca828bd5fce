package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrFileNotFound     = errors.New("document has no attached file")
	ErrInvalidFileType  = errors.New("invalid file type: only jpg, jpeg, png, pdf allowed")
	ErrFileTooLarge     = errors.New("file size exceeds 10MB limit")
)
