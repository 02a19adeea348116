package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string, companyID string) (Shift, error)
	ListByCompany(ctx context.Context, companyID string) ([]Shift, error)
	Delete(ctx context.Context, id string, companyID string) error
}

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)
	// GetByEmployeeAndDate returns the assignment for (employee, date) with
	// the shift window joined in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (ShiftAssignment, error)
	ListByCompany(ctx context.Context, companyID string, date *time.Time) ([]ShiftAssignment, error)
	// Replace swaps the shift of an existing (employee, date) assignment.
	// Used when an accepted change-shift submission takes effect.
	Replace(ctx context.Context, employeeID string, date time.Time, shiftID string) error
}
