package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrBranchNotFound   = errors.New("company branch not found")
	ErrPositionNotFound = errors.New("job position not found")
)
