package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepository) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	if newCompany.ID == "" {
		newCompany.ID = uuid.NewString()
	}
	if newCompany.PackageType == "" {
		newCompany.PackageType = "FREE"
	}

	query := `
		INSERT INTO companies (id, name, industry, package_type, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newCompany.ID,
		newCompany.Name,
		newCompany.Industry,
		newCompany.PackageType,
		newCompany.LogoURL,
	).Scan(&newCompany.CreatedAt, &newCompany.UpdatedAt)

	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return newCompany, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, industry, package_type, logo_url, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var comp company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&comp.ID, &comp.Name, &comp.Industry, &comp.PackageType, &comp.LogoURL,
		&comp.CreatedAt, &comp.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}

	return comp, nil
}
