package submission

import (
	"context"
	"time"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission Submission) (Submission, error)
	GetByID(ctx context.Context, id string) (Submission, error)

	// HasOverlapping reports whether the employee already has a PENDING or
	// ACCEPTED submission whose [from,to] range overlaps the given one.
	HasOverlapping(ctx context.Context, employeeID string, from time.Time, to time.Time) (bool, error)

	// ListByEmployeeYear lists the employee's submissions for a calendar
	// year, newest first. A nil status means all statuses.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int, status *Status) ([]Submission, error)

	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string, decidedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
