package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/submission"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

const submissionColumns = `
	id, employee_id, type, status,
	from_date, to_date, reason, leave_type,
	current_branch_id, target_branch_id,
	current_shift_id, target_shift_id, target_date,
	file_name, file_url, file_size, file_type,
	decided_by, decided_at, created_at, updated_at
`

func scanSubmission(row interface{ Scan(dest ...any) error }) (submission.Submission, error) {
	var s submission.Submission
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Type, &s.Status,
		&s.From, &s.To, &s.Reason, &s.LeaveType,
		&s.CurrentBranchID, &s.TargetBranchID,
		&s.CurrentShiftID, &s.TargetShiftID, &s.TargetDate,
		&s.FileName, &s.FileURL, &s.FileSize, &s.FileType,
		&s.DecidedBy, &s.DecidedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

type submissionRepository struct {
	db *database.DB
}

func NewSubmissionRepository(db *database.DB) submission.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create implements submission.SubmissionRepository.
func (r *submissionRepository) Create(ctx context.Context, s submission.Submission) (submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = submission.StatusPending
	}

	err := q.QueryRow(ctx, `
		INSERT INTO submissions (
			id, employee_id, type, status,
			from_date, to_date, reason, leave_type,
			current_branch_id, target_branch_id,
			current_shift_id, target_shift_id, target_date,
			file_name, file_url, file_size, file_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`,
		s.ID, s.EmployeeID, s.Type, s.Status,
		s.From, s.To, s.Reason, s.LeaveType,
		s.CurrentBranchID, s.TargetBranchID,
		s.CurrentShiftID, s.TargetShiftID, s.TargetDate,
		s.FileName, s.FileURL, s.FileSize, s.FileType,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return submission.Submission{}, fmt.Errorf("failed to create submission: %w", err)
	}

	return s, nil
}

// GetByID implements submission.SubmissionRepository.
func (r *submissionRepository) GetByID(ctx context.Context, id string) (submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE id = $1
	`, id)

	return scanSubmission(row)
}

// HasOverlapping implements submission.SubmissionRepository.
func (r *submissionRepository) HasOverlapping(ctx context.Context, employeeID string, from time.Time, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM submissions
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'ACCEPTED')
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`, employeeID, from, to).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping submissions: %w", err)
	}

	return exists, nil
}

// ListByEmployeeYear implements submission.SubmissionRepository.
func (r *submissionRepository) ListByEmployeeYear(ctx context.Context, employeeID string, year int, status *submission.Status) ([]submission.Submission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + submissionColumns + `
		FROM submissions
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM created_at) = $2
	`
	args := []any{employeeID, year}
	if status != nil {
		query += ` AND status = $3`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]submission.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return submissions, nil
}

// UpdateStatus implements submission.SubmissionRepository.
func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status submission.Status, decidedBy string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE submissions
		SET status = $2, decided_by = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $1
	`, id, status, decidedBy, decidedAt)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return submission.ErrSubmissionNotFound
	}

	return nil
}

// Delete implements submission.SubmissionRepository.
func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM submissions WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return submission.ErrSubmissionNotFound
	}

	return nil
}
