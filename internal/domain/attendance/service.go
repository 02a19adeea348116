package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	// Today returns the calling employee's record for the given date, or
	// ErrAttendanceNotFound.
	Today(ctx context.Context, date time.Time) (AttendanceResponse, error)
}
