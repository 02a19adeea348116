package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	shift.ShiftAssignmentRepository
	employee.EmployeeRepository
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:                        db,
		ShiftRepository:           shiftRepo,
		ShiftAssignmentRepository: assignmentRepo,
		EmployeeRepository:        employeeRepo,
	}
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	companyID, _ := ctx.Value("company_id").(string)

	from, _ := validator.IsValidClockTime(req.From)
	to, _ := validator.IsValidClockTime(req.To)

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		CompanyID: companyID,
		Name:      req.Name,
		From:      from,
		To:        to,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

// DeleteShift implements shift.ShiftService. A shift that still has
// assignments is protected by a foreign key and cannot be removed.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, shiftID string) error {
	companyID, _ := ctx.Value("company_id").(string)

	err := s.ShiftRepository.Delete(ctx, shiftID, companyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return shift.ErrShiftInUse
		}
		return err
	}

	return nil
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	companyID, _ := ctx.Value("company_id").(string)

	shifts, err := s.ShiftRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return responses, nil
}

// Assign implements shift.ShiftService.
func (s *ShiftServiceImpl) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	companyID, _ := ctx.Value("company_id").(string)
	date, _ := validator.IsValidDate(req.Date)

	shiftData, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, companyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.AssignmentResponse{}, employee.ErrEmployeeNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if employeeData.CompanyID == nil || *employeeData.CompanyID != companyID {
		return shift.AssignmentResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := s.ShiftAssignmentRepository.Create(ctx, shift.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Date:       date,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.AssignmentResponse{}, shift.ErrAssignmentExists
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return toAssignmentResponse(created, &shiftData, &employeeData), nil
}

// ListAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, date *time.Time) ([]shift.AssignmentResponse, error) {
	companyID, _ := ctx.Value("company_id").(string)

	assignments, err := s.ShiftAssignmentRepository.ListByCompany(ctx, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a, nil, nil))
	}

	return responses, nil
}

// UpdateAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateAssignment(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	companyID, _ := ctx.Value("company_id").(string)
	date, _ := validator.IsValidDate(req.Date)

	shiftData, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, companyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.ShiftAssignmentRepository.Replace(ctx, req.EmployeeID, date, req.ShiftID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	updated, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return toAssignmentResponse(updated, &shiftData, nil), nil
}

// GetShiftInfo implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShiftInfo(ctx context.Context, date time.Time) (shift.ShiftInfoResponse, error) {
	employeeID, _ := ctx.Value("employee_id").(string)

	profile, err := s.EmployeeRepository.GetProfile(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftInfoResponse{}, employee.ErrEmployeeNotFound
		}
		return shift.ShiftInfoResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftInfoResponse{}, shift.ErrAssignmentNotFound
		}
		return shift.ShiftInfoResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	response := shift.ShiftInfoResponse{
		Date:    date.Format(dateLayout),
		LogoURL: profile.CompanyLogoURL,
	}
	response.EmployeeName = profile.FullName
	if profile.CompanyName != nil {
		response.CompanyName = *profile.CompanyName
	}
	if assignment.ShiftFrom != nil {
		response.From = assignment.ShiftFrom.Format(clockLayout)
	}
	if assignment.ShiftTo != nil {
		response.To = assignment.ShiftTo.Format(clockLayout)
	}

	return response, nil
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:   s.ID,
		Name: s.Name,
		From: s.From.Format(clockLayout),
		To:   s.To.Format(clockLayout),
	}
}

func toAssignmentResponse(a shift.ShiftAssignment, sh *shift.Shift, emp *employee.Employee) shift.AssignmentResponse {
	response := shift.AssignmentResponse{
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		ShiftID:      a.ShiftID,
		ShiftName:    a.ShiftName,
		Date:         a.Date.Format(dateLayout),
	}

	if a.ShiftFrom != nil {
		from := a.ShiftFrom.Format(clockLayout)
		response.From = &from
	}
	if a.ShiftTo != nil {
		to := a.ShiftTo.Format(clockLayout)
		response.To = &to
	}

	if sh != nil {
		name := sh.Name
		from := sh.From.Format(clockLayout)
		to := sh.To.Format(clockLayout)
		response.ShiftName = &name
		response.From = &from
		response.To = &to
	}
	if emp != nil {
		name := emp.FullName
		response.EmployeeName = &name
	}

	return response
}
