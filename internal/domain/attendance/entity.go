package attendance

import "time"

// Attendance holds one record per (employee, date): at most one check-in and
// one check-out, each with the reported coordinates and an uploaded proof
// file reference. The file reference is recorded verbatim and never
// interpreted here.
type Attendance struct {
	ID         string
	EmployeeID string
	ShiftID    string
	Date       time.Time

	CheckInAt        *time.Time
	CheckInLatitude  *float64
	CheckInLongitude *float64
	CheckInFileName  *string
	CheckInFileURL   *string
	CheckInFileSize  *int64
	CheckInFileType  *string

	CheckOutAt        *time.Time
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutFileName  *string
	CheckOutFileURL   *string
	CheckOutFileSize  *int64
	CheckOutFileType  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
