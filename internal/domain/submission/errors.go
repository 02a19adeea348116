package submission

import "errors"

var (
	ErrSubmissionNotFound = errors.New("submission not found")

	// Creation errors
	ErrInvalidDateRange    = errors.New("from date must not be after to date")
	ErrDateConflict        = errors.New("another submission already covers part of this date range")
	ErrSameBranch          = errors.New("target branch must differ from the current branch")
	ErrSameShift           = errors.New("target shift must differ from the current shift")
	ErrNoCurrentAssignment = errors.New("employee is not assigned to the current shift on the target date")

	// Lifecycle errors
	ErrAlreadyDecided      = errors.New("submission has already been accepted or rejected")
	ErrCannotDeleteDecided = errors.New("only pending submissions can be deleted")
)
