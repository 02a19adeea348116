package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

// Create implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Create(ctx context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO shift_assignments (id, employee_id, shift_id, date)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, a.ID, a.EmployeeID, a.ShiftID, a.Date).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	var a shift.ShiftAssignment
	err := q.QueryRow(ctx, `
		SELECT a.id, a.employee_id, a.shift_id, a.date, a.created_at, a.updated_at,
			   s.name, s.shift_from, s.shift_to
		FROM shift_assignments a
		JOIN shifts s ON s.id = a.shift_id
		WHERE a.employee_id = $1 AND a.date = $2
	`, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
		&a.ShiftName, &a.ShiftFrom, &a.ShiftTo,
	)
	if err != nil {
		return shift.ShiftAssignment{}, err
	}

	return a, nil
}

// ListByCompany implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) ListByCompany(ctx context.Context, companyID string, date *time.Time) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.shift_id, a.date, a.created_at, a.updated_at,
			   s.name, s.shift_from, s.shift_to, e.full_name
		FROM shift_assignments a
		JOIN shifts s ON s.id = a.shift_id
		JOIN employees e ON e.id = a.employee_id
		WHERE s.company_id = $1
	`
	args := []any{companyID}
	if date != nil {
		query += ` AND a.date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY a.date ASC, s.shift_from ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]shift.ShiftAssignment, 0)
	for rows.Next() {
		var a shift.ShiftAssignment
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date, &a.CreatedAt, &a.UpdatedAt,
			&a.ShiftName, &a.ShiftFrom, &a.ShiftTo, &a.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}

	return assignments, nil
}

// Replace implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Replace(ctx context.Context, employeeID string, date time.Time, shiftID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shift_assignments
		SET shift_id = $3, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date, shiftID)
	if err != nil {
		return fmt.Errorf("failed to replace shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}
