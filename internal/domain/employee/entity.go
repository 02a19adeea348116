package employee

import "time"

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive EmploymentStatus = "INACTIVE"
)

type Employee struct {
	ID               string
	CompanyBranchID  string
	JobPositionID    string
	FullName         string
	Email            string
	PasswordHash     string
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	CompanyID       *string
	CompanyName     *string
	CompanyLogoURL  *string
	JobPositionName *string
}
