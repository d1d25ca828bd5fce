package branch

import "errors"

var (
	ErrBranchNotFound   = errors.New("branch not found")
	ErrBranchNameExists = errors.New("branch with this name already exists")
	ErrBranchInUse      = errors.New("branch is assigned to one or more employees")
)
