package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/attendance"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	id, employee_id, shift_id, date,
	check_in_at, check_in_latitude, check_in_longitude,
	check_in_file_name, check_in_file_url, check_in_file_size, check_in_file_type,
	check_out_at, check_out_latitude, check_out_longitude,
	check_out_file_name, check_out_file_url, check_out_file_size, check_out_file_type,
	created_at, updated_at
`

func scanAttendance(row interface{ Scan(dest ...any) error }) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ShiftID, &a.Date,
		&a.CheckInAt, &a.CheckInLatitude, &a.CheckInLongitude,
		&a.CheckInFileName, &a.CheckInFileURL, &a.CheckInFileSize, &a.CheckInFileType,
		&a.CheckOutAt, &a.CheckOutLatitude, &a.CheckOutLongitude,
		&a.CheckOutFileName, &a.CheckOutFileURL, &a.CheckOutFileSize, &a.CheckOutFileType,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO attendances (
			id, employee_id, shift_id, date,
			check_in_at, check_in_latitude, check_in_longitude,
			check_in_file_name, check_in_file_url, check_in_file_size, check_in_file_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`,
		a.ID, a.EmployeeID, a.ShiftID, a.Date,
		a.CheckInAt, a.CheckInLatitude, a.CheckInLongitude,
		a.CheckInFileName, a.CheckInFileURL, a.CheckInFileSize, a.CheckInFileType,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`, employeeID, date)

	a, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &a, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendances
		SET check_out_at = $2, check_out_latitude = $3, check_out_longitude = $4,
			check_out_file_name = $5, check_out_file_url = $6,
			check_out_file_size = $7, check_out_file_type = $8,
			updated_at = NOW()
		WHERE id = $1
	`,
		a.ID,
		a.CheckOutAt, a.CheckOutLatitude, a.CheckOutLongitude,
		a.CheckOutFileName, a.CheckOutFileURL, a.CheckOutFileSize, a.CheckOutFileType,
	)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
