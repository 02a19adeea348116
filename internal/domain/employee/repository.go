package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetProfile resolves the employee together with branch, company and
	// position joins for display purposes.
	GetProfile(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateBranch(ctx context.Context, id string, companyBranchID string) error
}
