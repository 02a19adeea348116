package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) company.BranchRepository {
	return &branchRepository{db: db}
}

const branchColumns = `
	id, company_id, hq_initial, email, phone_number, address, city,
	latitude, longitude, created_at, updated_at
`

func scanBranch(row interface{ Scan(dest ...any) error }) (company.CompanyBranch, error) {
	var b company.CompanyBranch
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.HqInitial, &b.Email, &b.PhoneNumber,
		&b.Address, &b.City, &b.Latitude, &b.Longitude,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Create implements company.BranchRepository.
func (r *branchRepository) Create(ctx context.Context, branch company.CompanyBranch) (company.CompanyBranch, error) {
	q := GetQuerier(ctx, r.db)

	if branch.ID == "" {
		branch.ID = uuid.NewString()
	}

	query := `
		INSERT INTO company_branches (
			id, company_id, hq_initial, email, phone_number, address, city,
			latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		branch.ID,
		branch.CompanyID,
		branch.HqInitial,
		branch.Email,
		branch.PhoneNumber,
		branch.Address,
		branch.City,
		branch.Latitude,
		branch.Longitude,
	).Scan(&branch.CreatedAt, &branch.UpdatedAt)

	if err != nil {
		return company.CompanyBranch{}, fmt.Errorf("failed to create company branch: %w", err)
	}

	return branch, nil
}

// GetByID implements company.BranchRepository.
func (r *branchRepository) GetByID(ctx context.Context, id string) (company.CompanyBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + branchColumns + ` FROM company_branches WHERE id = $1`

	return scanBranch(q.QueryRow(ctx, query, id))
}

// GetByIDInCompany implements company.BranchRepository.
func (r *branchRepository) GetByIDInCompany(ctx context.Context, id string, companyID string) (company.CompanyBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + branchColumns + ` FROM company_branches WHERE id = $1 AND company_id = $2`

	return scanBranch(q.QueryRow(ctx, query, id, companyID))
}

// GetByEmployeeID implements company.BranchRepository.
func (r *branchRepository) GetByEmployeeID(ctx context.Context, employeeID string) (company.CompanyBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.company_id, b.hq_initial, b.email, b.phone_number,
			   b.address, b.city, b.latitude, b.longitude, b.created_at, b.updated_at
		FROM company_branches b
		JOIN employees e ON e.company_branch_id = b.id
		WHERE e.id = $1
	`

	return scanBranch(q.QueryRow(ctx, query, employeeID))
}

// ListByCompany implements company.BranchRepository.
func (r *branchRepository) ListByCompany(ctx context.Context, companyID string) ([]company.CompanyBranch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + branchColumns + ` FROM company_branches WHERE company_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company branches: %w", err)
	}
	defer rows.Close()

	var branches []company.CompanyBranch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company branch: %w", err)
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}
