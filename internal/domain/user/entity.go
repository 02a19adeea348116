package user

import "time"

// User is a registered company administrator. Employees are a separate
// principal kind and live in the employee domain.
type User struct {
	ID           string
	CompanyID    *string
	Email        string
	PasswordHash string
	FullName     string
	PhoneNumber  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
