package shift

import "time"

// Shift defines a recurring clock window scoped to a company. From and To
// carry only the wall-clock component (zero date); a To earlier than From
// means the shift ends on the next day.
type Shift struct {
	ID        string
	CompanyID string
	Name      string
	From      time.Time
	To        time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftAssignment binds one employee to one shift for one calendar date.
// At most one assignment exists per (employee, date).
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	ShiftName    *string
	ShiftFrom    *time.Time
	ShiftTo      *time.Time
	EmployeeName *string
}
