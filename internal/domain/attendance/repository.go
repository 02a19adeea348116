package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. There is
// at most one record per (employee, date); check-out is appended onto the
// existing row, never inserted as a second one.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetCheckOut appends the check-out event to an existing record.
	SetCheckOut(ctx context.Context, attendance Attendance) error
}
