package submission

import "time"

type Type string

const (
	TypeSick        Type = "SAKIT"
	TypePermission  Type = "IZIN"
	TypeLeave       Type = "CUTI"
	TypeMutation    Type = "MUTASI"
	TypeChangeShift Type = "GANTI_SHIFT"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further status transition exists.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Submission is the common envelope over all request variants. Which payload
// fields are set depends on Type: permission/sick/leave carry a date range
// and reason, mutation carries branch references, change-shift carries shift
// references and a single target date (stored in From/To as well so it takes
// part in overlap detection).
type Submission struct {
	ID         string
	EmployeeID string
	Type       Type
	Status     Status

	From   *time.Time
	To     *time.Time
	Reason *string

	LeaveType *string

	CurrentBranchID *string
	TargetBranchID  *string

	CurrentShiftID *string
	TargetShiftID  *string
	TargetDate     *time.Time

	FileName *string
	FileURL  *string
	FileSize *int64
	FileType *string

	DecidedBy *string
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
