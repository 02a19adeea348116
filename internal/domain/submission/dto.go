package submission

import (
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

// FileRef mirrors the uploaded attachment metadata passed through from the
// upload layer.
type FileRef struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

type CreatePermissionRequest struct {
	From   string   `json:"from"` // YYYY-MM-DD
	To     string   `json:"to"`   // YYYY-MM-DD
	Reason string   `json:"permission_reason"`
	Type   Type     `json:"-"` // SAKIT or IZIN, set by the handler route
	File   *FileRef `json:"file,omitempty"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a calendar date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a calendar date in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "permission_reason",
			Message: "permission_reason is required",
		})
	}
	if r.Type != TypeSick && r.Type != TypePermission {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be SAKIT or IZIN",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeaveRequest struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Reason    string   `json:"leave_reason"`
	LeaveType string   `json:"leave_type"`
	File      *FileRef `json:"file,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a calendar date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a calendar date in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_reason",
			Message: "leave_reason is required",
		})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateMutationRequest struct {
	Reason         string   `json:"mutation_reason"`
	TargetBranchID string   `json:"target_company_branch_id"`
	File           *FileRef `json:"file,omitempty"`
}

func (r *CreateMutationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "mutation_reason",
			Message: "mutation_reason is required",
		})
	}
	if validator.IsEmpty(r.TargetBranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_company_branch_id",
			Message: "target_company_branch_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateChangeShiftRequest struct {
	CurrentShiftID string `json:"current_shift_id"`
	TargetShiftID  string `json:"target_shift_id"`
	TargetDate     string `json:"target_date"` // YYYY-MM-DD
}

func (r *CreateChangeShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_shift_id",
			Message: "current_shift_id is required",
		})
	}
	if validator.IsEmpty(r.TargetShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_shift_id",
			Message: "target_shift_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.TargetDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "target_date",
			Message: "target_date must be a calendar date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	SubmissionID string `json:"-"`
	Decision     Status `json:"decision"` // ACCEPTED or REJECTED
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SubmissionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "submission_id",
			Message: "submission_id is required",
		})
	}
	if r.Decision != StatusAccepted && r.Decision != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be ACCEPTED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryFilter struct {
	Year   int     `json:"year"`
	Status *Status `json:"status,omitempty"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if f.Status != nil {
		switch *f.Status {
		case StatusPending, StatusAccepted, StatusRejected:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be PENDING, ACCEPTED or REJECTED",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmissionResponse struct {
	ID             string  `json:"submission_id"`
	EmployeeID     string  `json:"employee_id"`
	Type           Type    `json:"type"`
	Status         Status  `json:"status"`
	From           *string `json:"from,omitempty"`
	To             *string `json:"to,omitempty"`
	Reason         *string `json:"reason,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	TargetBranchID *string `json:"target_company_branch_id,omitempty"`
	CurrentShiftID *string `json:"current_shift_id,omitempty"`
	TargetShiftID  *string `json:"target_shift_id,omitempty"`
	TargetDate     *string `json:"target_date,omitempty"`
	FileURL        *string `json:"file_url,omitempty"`
	SubmissionDate string  `json:"submission_date"`
}
