package postgresql

import (
	"context"
	"fmt"

	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_branch_id, e.job_position_id, e.full_name, e.email,
			   e.password_hash, e.employment_status, e.created_at, e.updated_at,
			   b.company_id
		FROM employees e
		JOIN company_branches b ON b.id = e.company_branch_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.CompanyBranchID, &emp.JobPositionID, &emp.FullName, &emp.Email,
		&emp.PasswordHash, &emp.EmploymentStatus, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.CompanyID,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetProfile implements employee.EmployeeRepository.
func (r *employeeRepository) GetProfile(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_branch_id, e.job_position_id, e.full_name, e.email,
			   e.password_hash, e.employment_status, e.created_at, e.updated_at,
			   b.company_id, c.name, c.logo_url, p.name
		FROM employees e
		JOIN company_branches b ON b.id = e.company_branch_id
		JOIN companies c ON c.id = b.company_id
		JOIN job_positions p ON p.id = e.job_position_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.CompanyBranchID, &emp.JobPositionID, &emp.FullName, &emp.Email,
		&emp.PasswordHash, &emp.EmploymentStatus, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.CompanyID, &emp.CompanyName, &emp.CompanyLogoURL, &emp.JobPositionName,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_branch_id, e.job_position_id, e.full_name, e.email,
			   e.password_hash, e.employment_status, e.created_at, e.updated_at,
			   b.company_id
		FROM employees e
		JOIN company_branches b ON b.id = e.company_branch_id
		WHERE e.email = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&emp.ID, &emp.CompanyBranchID, &emp.JobPositionID, &emp.FullName, &emp.Email,
		&emp.PasswordHash, &emp.EmploymentStatus, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.CompanyID,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// UpdatePassword implements employee.EmployeeRepository.
func (r *employeeRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update employee password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateBranch implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateBranch(ctx context.Context, id string, companyBranchID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET company_branch_id = $2, updated_at = NOW() WHERE id = $1
	`, id, companyBranchID)
	if err != nil {
		return fmt.Errorf("failed to update employee branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
