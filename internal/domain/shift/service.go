package shift

import (
	"context"
	"time"
)

// ShiftService is the shift directory: shift definitions plus the
// per-employee, per-date assignment table.
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, shiftID string) error
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	Assign(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, date *time.Time) ([]AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)

	// GetShiftInfo resolves today's shift window for the calling employee.
	GetShiftInfo(ctx context.Context, date time.Time) (ShiftInfoResponse, error)
}
