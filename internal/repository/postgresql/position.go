package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

type jobPositionRepository struct {
	db *database.DB
}

func NewJobPositionRepository(db *database.DB) company.JobPositionRepository {
	return &jobPositionRepository{db: db}
}

// Create implements company.JobPositionRepository.
func (r *jobPositionRepository) Create(ctx context.Context, position company.JobPosition) (company.JobPosition, error) {
	q := GetQuerier(ctx, r.db)

	if position.ID == "" {
		position.ID = uuid.NewString()
	}

	query := `
		INSERT INTO job_positions (id, company_branch_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		position.ID,
		position.CompanyBranchID,
		position.Name,
	).Scan(&position.CreatedAt, &position.UpdatedAt)

	if err != nil {
		return company.JobPosition{}, fmt.Errorf("failed to create job position: %w", err)
	}

	return position, nil
}

// ListByBranch implements company.JobPositionRepository.
func (r *jobPositionRepository) ListByBranch(ctx context.Context, branchID string) ([]company.JobPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_branch_id, name, created_at, updated_at
		FROM job_positions
		WHERE company_branch_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job positions: %w", err)
	}
	defer rows.Close()

	var positions []company.JobPosition
	for rows.Next() {
		var p company.JobPosition
		if err := rows.Scan(&p.ID, &p.CompanyBranchID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job position: %w", err)
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}
