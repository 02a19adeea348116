package response

import (
	"errors"
	"net/http"

	"github.com/kerjaplus/wfm-backend-go/internal/domain/attendance"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/auth"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/submission"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/user"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrGoogleLoginFailed):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// Identity errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrBranchNotFound):
		NotFound(w, "Company branch not found")
	case errors.Is(err, company.ErrPositionNotFound):
		NotFound(w, "Job position not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift still has assignments")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "No shift assignment for this date")
	case errors.Is(err, shift.ErrAssignmentExists):
		Conflict(w, "Employee already has a shift assignment for this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoShiftAssigned):
		BadRequest(w, "No shift assigned for this date", nil)
	case errors.Is(err, attendance.ErrOutsideShiftWindow):
		BadRequest(w, "Attendance is outside the shift window", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrLocationOutOfRange):
		BadRequest(w, "You are outside the allowed radius of your branch", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out cannot precede check-in", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Submission domain errors
	case errors.Is(err, submission.ErrSubmissionNotFound):
		NotFound(w, "Submission not found")
	case errors.Is(err, submission.ErrInvalidDateRange):
		BadRequest(w, "from date must not be after to date", nil)
	case errors.Is(err, submission.ErrDateConflict):
		Conflict(w, "Another submission already covers part of this date range")
	case errors.Is(err, submission.ErrSameBranch):
		BadRequest(w, "Target branch must differ from the current branch", nil)
	case errors.Is(err, submission.ErrSameShift):
		BadRequest(w, "Target shift must differ from the current shift", nil)
	case errors.Is(err, submission.ErrNoCurrentAssignment):
		BadRequest(w, "Employee is not assigned to the current shift on the target date", nil)
	case errors.Is(err, submission.ErrAlreadyDecided):
		Conflict(w, "Submission has already been accepted or rejected")
	case errors.Is(err, submission.ErrCannotDeleteDecided):
		Conflict(w, "Only pending submissions can be deleted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
