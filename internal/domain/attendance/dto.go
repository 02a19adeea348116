package attendance

import (
	"time"

	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

// FileRef is the uploaded attachment metadata recorded alongside a check
// event. The file itself is handled by the upload layer; the engine only
// stores the reference.
type FileRef struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

type CheckRequest struct {
	Timestamp time.Time `json:"-"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"long"`
	File      *FileRef  `json:"file,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "lat",
			Message: "lat must be between -90 and 90",
		})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "long",
			Message: "long must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	// Time is the formatted clock time of the event just recorded.
	Time string `json:"time"`
	// From and To are the resolved shift window, for display.
	From string `json:"from"`
	To   string `json:"to"`

	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"long"`
	FileURL      *string `json:"file_url,omitempty"`
}
