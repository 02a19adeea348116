package company

import "time"

type Company struct {
	ID          string
	Name        string
	Industry    string
	PackageType string
	LogoURL     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanyBranch is the authorization scope for employees and the geofence
// anchor for attendance. Latitude and longitude are the branch's registered
// coordinates; they are nil until the branch is geotagged.
type CompanyBranch struct {
	ID          string
	CompanyID   string
	HqInitial   string
	Email       string
	PhoneNumber string
	Address     *string
	City        *string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type JobPosition struct {
	ID              string
	CompanyBranchID string
	Name            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
