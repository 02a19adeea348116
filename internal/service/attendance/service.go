package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/config"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/attendance"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/utils"
	"github.com/kerjaplus/wfm-backend-go/internal/repository/postgresql"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	shift.ShiftAssignmentRepository
	company.BranchRepository
	cfg config.AttendanceConfig
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
	branchRepo company.BranchRepository,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                        db,
		AttendanceRepository:      attendanceRepo,
		ShiftAssignmentRepository: assignmentRepo,
		BranchRepository:          branchRepo,
		cfg:                       cfg,
	}
}

// CheckIn implements attendance.AttendanceService. A check-in is accepted
// from the grace period before shift start until shift end, and only inside
// the branch geofence.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var response attendance.AttendanceResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response, err = s.checkIn(txCtx, req)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return response, nil
}

func (s *AttendanceServiceImpl) checkIn(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	employeeID, _ := ctx.Value("employee_id").(string)
	date := truncateToDate(req.Timestamp)

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendanceResponse{}, attendance.ErrNoShiftAssigned
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	windowStart, windowEnd := shiftWindow(date, assignment)
	earliest := windowStart.Add(-time.Duration(s.cfg.GracePeriodMinutes) * time.Minute)
	if req.Timestamp.Before(earliest) || req.Timestamp.After(windowEnd) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideShiftWindow
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	if err := s.checkGeofence(ctx, employeeID, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Attendance{
		EmployeeID:       employeeID,
		ShiftID:          assignment.ShiftID,
		Date:             date,
		CheckInAt:        &req.Timestamp,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
	}
	if req.File != nil {
		record.CheckInFileName = &req.File.FileName
		record.CheckInFileURL = &req.File.FileURL
		record.CheckInFileSize = &req.File.FileSize
		record.CheckInFileType = &req.File.FileType
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created, assignment, req.Timestamp, req.Latitude, req.Longitude), nil
}

// CheckOut implements attendance.AttendanceService. The check-out timestamp
// itself is unrestricted as long as it does not precede the check-in.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var response attendance.AttendanceResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response, err = s.checkOut(txCtx, req)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return response, nil
}

func (s *AttendanceServiceImpl) checkOut(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	employeeID, _ := ctx.Value("employee_id").(string)
	date := truncateToDate(req.Timestamp)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckInAt == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutAt != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if req.Timestamp.Before(*record.CheckInAt) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	if err := s.checkGeofence(ctx, employeeID, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.CheckOutAt = &req.Timestamp
	record.CheckOutLatitude = &req.Latitude
	record.CheckOutLongitude = &req.Longitude
	if req.File != nil {
		record.CheckOutFileName = &req.File.FileName
		record.CheckOutFileURL = &req.File.FileURL
		record.CheckOutFileSize = &req.File.FileSize
		record.CheckOutFileType = &req.File.FileType
	}

	if err := s.AttendanceRepository.SetCheckOut(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil && err != pgx.ErrNoRows {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return toResponse(*record, assignment, req.Timestamp, req.Latitude, req.Longitude), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, date time.Time) (attendance.AttendanceResponse, error) {
	employeeID, _ := ctx.Value("employee_id").(string)
	date = truncateToDate(date)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil && err != pgx.ErrNoRows {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	var eventTime time.Time
	var lat, long float64
	if record.CheckInAt != nil {
		eventTime = *record.CheckInAt
	}
	if record.CheckOutAt != nil {
		eventTime = *record.CheckOutAt
	}
	if record.CheckInLatitude != nil {
		lat = *record.CheckInLatitude
	}
	if record.CheckInLongitude != nil {
		long = *record.CheckInLongitude
	}

	return toResponse(*record, assignment, eventTime, lat, long), nil
}

func (s *AttendanceServiceImpl) checkGeofence(ctx context.Context, employeeID string, lat, long float64) error {
	branch, err := s.BranchRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.ErrBranchNotFound
		}
		return fmt.Errorf("failed to get branch: %w", err)
	}

	// Branches without registered coordinates do not enforce a geofence.
	if branch.Latitude == nil || branch.Longitude == nil {
		return nil
	}

	distance := utils.CalculateHaversineDistance(lat, long, *branch.Latitude, *branch.Longitude)
	if distance > s.cfg.GeofenceRadiusMeters {
		return attendance.ErrLocationOutOfRange
	}

	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// shiftWindow projects the wall-clock shift times onto the given date. A To
// before From rolls over to the next day.
func shiftWindow(date time.Time, assignment shift.ShiftAssignment) (time.Time, time.Time) {
	var from, to time.Time
	if assignment.ShiftFrom != nil {
		from = *assignment.ShiftFrom
	}
	if assignment.ShiftTo != nil {
		to = *assignment.ShiftTo
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), from.Hour(), from.Minute(), 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), to.Hour(), to.Minute(), 0, 0, date.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return start, end
}

func toResponse(record attendance.Attendance, assignment shift.ShiftAssignment, eventTime time.Time, lat, long float64) attendance.AttendanceResponse {
	response := attendance.AttendanceResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format(dateLayout),
		Time:       eventTime.Format(clockLayout),
		Latitude:   lat,
		Longitude:  long,
	}

	if assignment.ShiftFrom != nil {
		response.From = assignment.ShiftFrom.Format(clockLayout)
	}
	if assignment.ShiftTo != nil {
		response.To = assignment.ShiftTo.Format(clockLayout)
	}

	if record.CheckInAt != nil {
		checkIn := record.CheckInAt.Format(clockLayout)
		response.CheckInTime = &checkIn
	}
	if record.CheckOutAt != nil {
		checkOut := record.CheckOutAt.Format(clockLayout)
		response.CheckOutTime = &checkOut
	}
	if record.CheckOutFileURL != nil {
		response.FileURL = record.CheckOutFileURL
	} else if record.CheckInFileURL != nil {
		response.FileURL = record.CheckInFileURL
	}

	return response
}
