package fixtures

import (
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
)

// DefaultHQInitial is the marker for the headquarters branch created at
// registration.
const DefaultHQInitial = "PUSAT"

// GetDefaultBranch returns the headquarters branch for a newly registered
// company. Contact details are copied from the registering admin.
func GetDefaultBranch(companyID string, email string, phoneNumber string) company.CompanyBranch {
	return company.CompanyBranch{
		CompanyID:   companyID,
		HqInitial:   DefaultHQInitial,
		Email:       email,
		PhoneNumber: phoneNumber,
	}
}

// GetDefaultPositions returns the job positions every new company starts
// with.
func GetDefaultPositions(branchID string) []company.JobPosition {
	return []company.JobPosition{
		{CompanyBranchID: branchID, Name: "Owner"},
		{CompanyBranchID: branchID, Name: "Manager"},
	}
}
