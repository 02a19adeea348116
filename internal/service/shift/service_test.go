package shift

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	if s.ID == "" {
		s.ID = "shift-" + s.Name
	}
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string, companyID string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok || s.CompanyID != companyID {
		return shift.Shift{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeShiftRepo) ListByCompany(ctx context.Context, companyID string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string, companyID string) error {
	s, ok := f.shifts[id]
	if !ok || s.CompanyID != companyID {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

// fkViolationShiftRepo simulates the restrict constraint on assignments.
type fkViolationShiftRepo struct {
	fakeShiftRepo
}

func (f *fkViolationShiftRepo) Delete(ctx context.Context, id string, companyID string) error {
	return &pgconn.PgError{Code: "23503"}
}

type assignmentKey struct {
	employeeID string
	date       string
}

type fakeAssignmentRepo struct {
	shifts      *fakeShiftRepo
	assignments map[assignmentKey]shift.ShiftAssignment
}

func (f *fakeAssignmentRepo) key(employeeID string, d time.Time) assignmentKey {
	return assignmentKey{employeeID: employeeID, date: d.Format("2006-01-02")}
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	k := f.key(a.EmployeeID, a.Date)
	if _, ok := f.assignments[k]; ok {
		return shift.ShiftAssignment{}, &pgconn.PgError{Code: "23505"}
	}
	a.ID = "assignment-" + k.employeeID + "-" + k.date
	f.assignments[k] = a
	return a, nil
}

func (f *fakeAssignmentRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, d time.Time) (shift.ShiftAssignment, error) {
	a, ok := f.assignments[f.key(employeeID, d)]
	if !ok {
		return shift.ShiftAssignment{}, pgx.ErrNoRows
	}
	if s, ok := f.shifts.shifts[a.ShiftID]; ok {
		name, from, to := s.Name, s.From, s.To
		a.ShiftName = &name
		a.ShiftFrom = &from
		a.ShiftTo = &to
	}
	return a, nil
}

func (f *fakeAssignmentRepo) ListByCompany(ctx context.Context, companyID string, d *time.Time) ([]shift.ShiftAssignment, error) {
	var out []shift.ShiftAssignment
	for _, a := range f.assignments {
		s, ok := f.shifts.shifts[a.ShiftID]
		if !ok || s.CompanyID != companyID {
			continue
		}
		if d != nil && !a.Date.Equal(*d) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Replace(ctx context.Context, employeeID string, d time.Time, shiftID string) error {
	k := f.key(employeeID, d)
	a, ok := f.assignments[k]
	if !ok {
		return shift.ErrAssignmentNotFound
	}
	a.ShiftID = shiftID
	f.assignments[k] = a
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetProfile(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return nil
}

func (f *fakeEmployeeRepo) UpdateBranch(ctx context.Context, id string, companyBranchID string) error {
	return nil
}

func adminCtx(companyID string) context.Context {
	return context.WithValue(context.Background(), "company_id", companyID)
}

func employeeCtx(employeeID string) context.Context {
	return context.WithValue(context.Background(), "employee_id", employeeID)
}

func newTestShiftService() (*ShiftServiceImpl, *fakeShiftRepo, *fakeAssignmentRepo, *fakeEmployeeRepo) {
	companyID := "company-1"
	shiftRepo := &fakeShiftRepo{shifts: map[string]shift.Shift{
		"shift-morning": {ID: "shift-morning", CompanyID: companyID, Name: "Morning", From: clock(8, 0), To: clock(16, 0)},
		"shift-night":   {ID: "shift-night", CompanyID: companyID, Name: "Night", From: clock(22, 0), To: clock(6, 0)},
	}}
	assignmentRepo := &fakeAssignmentRepo{shifts: shiftRepo, assignments: map[assignmentKey]shift.ShiftAssignment{}}
	companyName := "Acme"
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Worker", CompanyBranchID: "branch-1", CompanyID: &companyID, CompanyName: &companyName},
	}}

	svc := &ShiftServiceImpl{
		ShiftRepository:           shiftRepo,
		ShiftAssignmentRepository: assignmentRepo,
		EmployeeRepository:        employeeRepo,
	}
	return svc, shiftRepo, assignmentRepo, employeeRepo
}

func TestCreateShift(t *testing.T) {
	svc, _, _, _ := newTestShiftService()

	t.Run("success", func(t *testing.T) {
		resp, err := svc.CreateShift(adminCtx("company-1"), shift.CreateShiftRequest{
			Name: "Evening",
			From: "14:00",
			To:   "22:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "Evening", resp.Name)
		assert.Equal(t, "14:00", resp.From)
		assert.Equal(t, "22:00", resp.To)
	})

	t.Run("invalid clock time", func(t *testing.T) {
		_, err := svc.CreateShift(adminCtx("company-1"), shift.CreateShiftRequest{
			Name: "Broken",
			From: "25:00",
			To:   "22:00",
		})
		assert.Error(t, err)
	})
}

func TestDeleteShift(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, shiftRepo, _, _ := newTestShiftService()
		err := svc.DeleteShift(adminCtx("company-1"), "shift-morning")
		require.NoError(t, err)
		_, ok := shiftRepo.shifts["shift-morning"]
		assert.False(t, ok)
	})

	t.Run("wrong company", func(t *testing.T) {
		svc, _, _, _ := newTestShiftService()
		err := svc.DeleteShift(adminCtx("company-2"), "shift-morning")
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})

	t.Run("shift in use", func(t *testing.T) {
		svc, shiftRepo, assignmentRepo, employeeRepo := newTestShiftService()
		svc = &ShiftServiceImpl{
			ShiftRepository:           &fkViolationShiftRepo{fakeShiftRepo: *shiftRepo},
			ShiftAssignmentRepository: assignmentRepo,
			EmployeeRepository:        employeeRepo,
		}
		err := svc.DeleteShift(adminCtx("company-1"), "shift-morning")
		assert.ErrorIs(t, err, shift.ErrShiftInUse)
	})
}

func TestAssign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, assignmentRepo, _ := newTestShiftService()
		resp, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-1",
			ShiftID:    "shift-morning",
			Date:       "2026-03-02",
		})
		require.NoError(t, err)
		assert.Equal(t, "emp-1", resp.EmployeeID)
		assert.Equal(t, "2026-03-02", resp.Date)
		require.NotNil(t, resp.From)
		assert.Equal(t, "08:00", *resp.From)
		assert.Len(t, assignmentRepo.assignments, 1)
	})

	t.Run("duplicate date", func(t *testing.T) {
		svc, _, _, _ := newTestShiftService()
		req := shift.AssignShiftRequest{EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2026-03-02"}
		_, err := svc.Assign(adminCtx("company-1"), req)
		require.NoError(t, err)
		_, err = svc.Assign(adminCtx("company-1"), req)
		assert.ErrorIs(t, err, shift.ErrAssignmentExists)
	})

	t.Run("unknown shift", func(t *testing.T) {
		svc, _, _, _ := newTestShiftService()
		_, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-1",
			ShiftID:    "shift-ghost",
			Date:       "2026-03-02",
		})
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})

	t.Run("employee outside the company", func(t *testing.T) {
		svc, _, _, employeeRepo := newTestShiftService()
		otherCompany := "company-2"
		employeeRepo.employees["emp-2"] = employee.Employee{ID: "emp-2", CompanyID: &otherCompany}
		_, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-2",
			ShiftID:    "shift-morning",
			Date:       "2026-03-02",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestUpdateAssignment(t *testing.T) {
	svc, _, assignmentRepo, _ := newTestShiftService()
	_, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-morning",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.UpdateAssignment(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-1",
			ShiftID:    "shift-night",
			Date:       "2026-03-02",
		})
		require.NoError(t, err)
		assert.Equal(t, "shift-night", resp.ShiftID)

		stored := assignmentRepo.assignments[assignmentRepo.key("emp-1", date(2026, 3, 2))]
		assert.Equal(t, "shift-night", stored.ShiftID)
	})

	t.Run("no assignment on that date", func(t *testing.T) {
		_, err := svc.UpdateAssignment(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-1",
			ShiftID:    "shift-night",
			Date:       "2026-03-03",
		})
		assert.ErrorIs(t, err, shift.ErrAssignmentNotFound)
	})
}

func TestListAssignments(t *testing.T) {
	svc, _, _, _ := newTestShiftService()
	for _, day := range []string{"2026-03-02", "2026-03-03"} {
		_, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
			EmployeeID: "emp-1",
			ShiftID:    "shift-morning",
			Date:       day,
		})
		require.NoError(t, err)
	}

	all, err := svc.ListAssignments(adminCtx("company-1"), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	day := date(2026, 3, 2)
	filtered, err := svc.ListAssignments(adminCtx("company-1"), &day)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestGetShiftInfo(t *testing.T) {
	svc, _, _, _ := newTestShiftService()
	_, err := svc.Assign(adminCtx("company-1"), shift.AssignShiftRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-night",
		Date:       "2026-03-02",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.GetShiftInfo(employeeCtx("emp-1"), date(2026, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, "Worker", resp.EmployeeName)
		assert.Equal(t, "Acme", resp.CompanyName)
		assert.Equal(t, "2026-03-02", resp.Date)
		assert.Equal(t, "22:00", resp.From)
		assert.Equal(t, "06:00", resp.To)
	})

	t.Run("no assignment", func(t *testing.T) {
		_, err := svc.GetShiftInfo(employeeCtx("emp-1"), date(2026, 3, 5))
		assert.ErrorIs(t, err, shift.ErrAssignmentNotFound)
	})
}
