package submission

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/submission"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/validator"
	"github.com/kerjaplus/wfm-backend-go/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type SubmissionServiceImpl struct {
	db *database.DB
	submission.SubmissionRepository
	shift.ShiftRepository
	shift.ShiftAssignmentRepository
	employee.EmployeeRepository
	company.BranchRepository
}

func NewSubmissionService(
	db *database.DB,
	submissionRepo submission.SubmissionRepository,
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo company.BranchRepository,
) submission.SubmissionService {
	return &SubmissionServiceImpl{
		db:                        db,
		SubmissionRepository:      submissionRepo,
		ShiftRepository:           shiftRepo,
		ShiftAssignmentRepository: assignmentRepo,
		EmployeeRepository:        employeeRepo,
		BranchRepository:          branchRepo,
	}
}

// CreatePermission implements submission.SubmissionService. Covers both the
// sick (SAKIT) and permission (IZIN) variants.
func (s *SubmissionServiceImpl) CreatePermission(ctx context.Context, req submission.CreatePermissionRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	employeeID, _ := ctx.Value("employee_id").(string)
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	if from.After(to) {
		return submission.SubmissionResponse{}, submission.ErrInvalidDateRange
	}

	record := submission.Submission{
		EmployeeID: employeeID,
		Type:       req.Type,
		From:       &from,
		To:         &to,
		Reason:     &req.Reason,
	}
	applyFile(&record, req.File)

	return s.createRanged(ctx, record, from, to)
}

// CreateLeave implements submission.SubmissionService.
func (s *SubmissionServiceImpl) CreateLeave(ctx context.Context, req submission.CreateLeaveRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	employeeID, _ := ctx.Value("employee_id").(string)
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	if from.After(to) {
		return submission.SubmissionResponse{}, submission.ErrInvalidDateRange
	}

	record := submission.Submission{
		EmployeeID: employeeID,
		Type:       submission.TypeLeave,
		From:       &from,
		To:         &to,
		Reason:     &req.Reason,
		LeaveType:  &req.LeaveType,
	}
	applyFile(&record, req.File)

	return s.createRanged(ctx, record, from, to)
}

// createRanged persists a date-ranged submission after the overlap check,
// both inside one transaction so two concurrent conflicting requests cannot
// both pass.
func (s *SubmissionServiceImpl) createRanged(ctx context.Context, record submission.Submission, from, to time.Time) (submission.SubmissionResponse, error) {
	var response submission.SubmissionResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response, err = s.createConflictFree(txCtx, record, from, to)
		return err
	})
	if err != nil {
		return submission.SubmissionResponse{}, err
	}

	return response, nil
}

func (s *SubmissionServiceImpl) createConflictFree(ctx context.Context, record submission.Submission, from, to time.Time) (submission.SubmissionResponse, error) {
	conflicting, err := s.SubmissionRepository.HasOverlapping(ctx, record.EmployeeID, from, to)
	if err != nil {
		return submission.SubmissionResponse{}, err
	}
	if conflicting {
		return submission.SubmissionResponse{}, submission.ErrDateConflict
	}

	created, err := s.SubmissionRepository.Create(ctx, record)
	if err != nil {
		return submission.SubmissionResponse{}, err
	}

	return toResponse(created), nil
}

// CreateMutation implements submission.SubmissionService. The target branch
// must exist in the employee's company and differ from the current one.
func (s *SubmissionServiceImpl) CreateMutation(ctx context.Context, req submission.CreateMutationRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	employeeID, _ := ctx.Value("employee_id").(string)

	currentBranch, err := s.BranchRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, company.ErrBranchNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get current branch: %w", err)
	}

	if req.TargetBranchID == currentBranch.ID {
		return submission.SubmissionResponse{}, submission.ErrSameBranch
	}

	if _, err := s.BranchRepository.GetByIDInCompany(ctx, req.TargetBranchID, currentBranch.CompanyID); err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, company.ErrBranchNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get target branch: %w", err)
	}

	record := submission.Submission{
		EmployeeID:      employeeID,
		Type:            submission.TypeMutation,
		Reason:          &req.Reason,
		CurrentBranchID: &currentBranch.ID,
		TargetBranchID:  &req.TargetBranchID,
	}
	applyFile(&record, req.File)

	created, err := s.SubmissionRepository.Create(ctx, record)
	if err != nil {
		return submission.SubmissionResponse{}, err
	}

	return toResponse(created), nil
}

// CreateChangeShift implements submission.SubmissionService. The target date
// is stored in the from/to range as well so the request takes part in
// overlap detection against leaves and permissions.
func (s *SubmissionServiceImpl) CreateChangeShift(ctx context.Context, req submission.CreateChangeShiftRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	if req.TargetShiftID == req.CurrentShiftID {
		return submission.SubmissionResponse{}, submission.ErrSameShift
	}

	employeeID, _ := ctx.Value("employee_id").(string)
	targetDate, _ := validator.IsValidDate(req.TargetDate)

	employeeData, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, employee.ErrEmployeeNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var companyID string
	if employeeData.CompanyID != nil {
		companyID = *employeeData.CompanyID
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.CurrentShiftID, companyID); err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, shift.ErrShiftNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get current shift: %w", err)
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.TargetShiftID, companyID); err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, shift.ErrShiftNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get target shift: %w", err)
	}

	assignment, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, employeeID, targetDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, submission.ErrNoCurrentAssignment
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}
	if assignment.ShiftID != req.CurrentShiftID {
		return submission.SubmissionResponse{}, submission.ErrNoCurrentAssignment
	}

	record := submission.Submission{
		EmployeeID:     employeeID,
		Type:           submission.TypeChangeShift,
		From:           &targetDate,
		To:             &targetDate,
		CurrentShiftID: &req.CurrentShiftID,
		TargetShiftID:  &req.TargetShiftID,
		TargetDate:     &targetDate,
	}

	return s.createRanged(ctx, record, targetDate, targetDate)
}

// Decide implements submission.SubmissionService. An accepted change-shift
// swaps the assignment and an accepted mutation moves the employee, both in
// the same transaction as the status change.
func (s *SubmissionServiceImpl) Decide(ctx context.Context, req submission.DecideRequest) (submission.SubmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return submission.SubmissionResponse{}, err
	}

	var response submission.SubmissionResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response, err = s.decide(txCtx, req)
		return err
	})
	if err != nil {
		return submission.SubmissionResponse{}, err
	}

	return response, nil
}

func (s *SubmissionServiceImpl) decide(ctx context.Context, req submission.DecideRequest) (submission.SubmissionResponse, error) {
	userID, _ := ctx.Value("user_id").(string)
	companyID, _ := ctx.Value("company_id").(string)

	record, err := s.SubmissionRepository.GetByID(ctx, req.SubmissionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.SubmissionResponse{}, submission.ErrSubmissionNotFound
		}
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get submission: %w", err)
	}

	employeeData, err := s.EmployeeRepository.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return submission.SubmissionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if employeeData.CompanyID == nil || *employeeData.CompanyID != companyID {
		return submission.SubmissionResponse{}, submission.ErrSubmissionNotFound
	}

	if record.Status.Terminal() {
		return submission.SubmissionResponse{}, submission.ErrAlreadyDecided
	}

	decidedAt := time.Now()
	if err := s.SubmissionRepository.UpdateStatus(ctx, record.ID, req.Decision, userID, decidedAt); err != nil {
		return submission.SubmissionResponse{}, err
	}

	if req.Decision == submission.StatusAccepted {
		switch record.Type {
		case submission.TypeChangeShift:
			if err := s.ShiftAssignmentRepository.Replace(ctx, record.EmployeeID, *record.TargetDate, *record.TargetShiftID); err != nil {
				return submission.SubmissionResponse{}, err
			}
		case submission.TypeMutation:
			if err := s.EmployeeRepository.UpdateBranch(ctx, record.EmployeeID, *record.TargetBranchID); err != nil {
				return submission.SubmissionResponse{}, err
			}
		}
	}

	record.Status = req.Decision
	record.DecidedBy = &userID
	record.DecidedAt = &decidedAt
	return toResponse(record), nil
}

// History implements submission.SubmissionService.
func (s *SubmissionServiceImpl) History(ctx context.Context, filter submission.HistoryFilter) ([]submission.SubmissionResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, _ := ctx.Value("employee_id").(string)

	records, err := s.SubmissionRepository.ListByEmployeeYear(ctx, employeeID, filter.Year, filter.Status)
	if err != nil {
		return nil, err
	}

	// Newest first, independent of the store's ordering.
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	responses := make([]submission.SubmissionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}

	return responses, nil
}

// Delete implements submission.SubmissionService. Only the owner can delete,
// and only while the submission is still pending.
func (s *SubmissionServiceImpl) Delete(ctx context.Context, submissionID string) error {
	employeeID, _ := ctx.Value("employee_id").(string)

	record, err := s.SubmissionRepository.GetByID(ctx, submissionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return submission.ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to get submission: %w", err)
	}

	if record.EmployeeID != employeeID {
		return submission.ErrSubmissionNotFound
	}
	if record.Status != submission.StatusPending {
		return submission.ErrCannotDeleteDecided
	}

	return s.SubmissionRepository.Delete(ctx, submissionID)
}

func applyFile(record *submission.Submission, file *submission.FileRef) {
	if file == nil {
		return
	}
	record.FileName = &file.FileName
	record.FileURL = &file.FileURL
	record.FileSize = &file.FileSize
	record.FileType = &file.FileType
}

func toResponse(record submission.Submission) submission.SubmissionResponse {
	response := submission.SubmissionResponse{
		ID:             record.ID,
		EmployeeID:     record.EmployeeID,
		Type:           record.Type,
		Status:         record.Status,
		Reason:         record.Reason,
		LeaveType:      record.LeaveType,
		TargetBranchID: record.TargetBranchID,
		CurrentShiftID: record.CurrentShiftID,
		TargetShiftID:  record.TargetShiftID,
		FileURL:        record.FileURL,
		SubmissionDate: record.CreatedAt.Format(dateLayout),
	}

	if record.From != nil {
		from := record.From.Format(dateLayout)
		response.From = &from
	}
	if record.To != nil {
		to := record.To.Format(dateLayout)
		response.To = &to
	}
	if record.TargetDate != nil {
		targetDate := record.TargetDate.Format(dateLayout)
		response.TargetDate = &targetDate
	}

	return response
}
