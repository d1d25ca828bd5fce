package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department with this name already exists")
	ErrDepartmentInUse      = errors.New("department is assigned to one or more employees")
)
