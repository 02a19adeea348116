package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrNoShiftAssigned    = errors.New("no shift assigned for this date")
	ErrOutsideShiftWindow = errors.New("attendance is outside the shift window")
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrLocationOutOfRange = errors.New("you are outside the allowed radius of your branch")

	// Check-out errors
	ErrNotCheckedIn          = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut     = errors.New("you have already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out cannot precede check-in")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
