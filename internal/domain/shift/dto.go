package shift

import (
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name string `json:"name"`
	From string `json:"from"` // HH:MM
	To   string `json:"to"`   // HH:MM
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidClockTime(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a clock time in HH:MM format",
		})
	}
	if _, ok := validator.IsValidClockTime(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a clock time in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Date       string `json:"date"` // YYYY-MM-DD
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a calendar date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID   string `json:"shift_id"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

type AssignmentResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ShiftID      string  `json:"shift_id"`
	ShiftName    *string `json:"shift_name,omitempty"`
	Date         string  `json:"date"`
	From         *string `json:"from,omitempty"`
	To           *string `json:"to,omitempty"`
}

// ShiftInfoResponse is what the employee app shows on the attendance screen.
type ShiftInfoResponse struct {
	EmployeeName string  `json:"employee_name"`
	CompanyName  string  `json:"company_name"`
	LogoURL      *string `json:"logo_url,omitempty"`
	Date         string  `json:"date"`
	From         string  `json:"from"`
	To           string  `json:"to"`
}
