package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftInUse         = errors.New("shift still has assignments")
	ErrAssignmentNotFound = errors.New("no shift assignment for this date")
	ErrAssignmentExists   = errors.New("employee already has a shift assignment for this date")
)
