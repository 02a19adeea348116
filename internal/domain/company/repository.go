package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
}

// BranchRepository methods that read on behalf of a company take a companyID
// parameter to prevent cross-company access.
type BranchRepository interface {
	Create(ctx context.Context, branch CompanyBranch) (CompanyBranch, error)
	GetByID(ctx context.Context, id string) (CompanyBranch, error)
	GetByIDInCompany(ctx context.Context, id string, companyID string) (CompanyBranch, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (CompanyBranch, error)
	ListByCompany(ctx context.Context, companyID string) ([]CompanyBranch, error)
}

type JobPositionRepository interface {
	Create(ctx context.Context, position JobPosition) (JobPosition, error)
	ListByBranch(ctx context.Context, branchID string) ([]JobPosition, error)
}
