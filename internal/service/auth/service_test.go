package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjaplus/wfm-backend-go/internal/config"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/auth"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/user"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func testJWTService() jwt.Service {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:             testSecret,
		UserExpiration:     "1h",
		EmployeeExpiration: "24h",
	})
}

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = "user-" + u.Email
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) CountByEmail(ctx context.Context, email string) (int64, error) {
	if _, ok := f.users[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	for email, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			f.users[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateCompanyID(ctx context.Context, id string, companyID string) error {
	for email, u := range f.users {
		if u.ID == id {
			u.CompanyID = &companyID
			f.users[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee // keyed by ID
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
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.PasswordHash = passwordHash
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateBranch(ctx context.Context, id string, companyBranchID string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.CompanyBranchID = companyBranchID
	f.employees[id] = e
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	c.ID = "company-" + c.Name
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, pgx.ErrNoRows
	}
	return c, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(userRepo *fakeUserRepo, employeeRepo *fakeEmployeeRepo, companyRepo *fakeCompanyRepo) *AuthServiceImpl {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
		jwtService:         testJWTService(),
	}
}

func TestLogin(t *testing.T) {
	companyID := "company-acme"
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"admin@acme.test": {
			ID:           "user-1",
			CompanyID:    &companyID,
			Email:        "admin@acme.test",
			PasswordHash: hashPassword(t, "supersecret"),
			FullName:     "Admin",
		},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		companyID: {ID: companyID, Name: "Acme", PackageType: "FREE"},
	}}
	svc := newTestAuthService(userRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, companyRepo)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@acme.test",
			Password: "supersecret",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Greater(t, resp.ExpiresAt, int64(0))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "admin@acme.test",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@acme.test",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestEmployeeLogin(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			CompanyBranchID:  "branch-1",
			Email:            "worker@acme.test",
			PasswordHash:     hashPassword(t, "workerpass"),
			EmploymentStatus: employee.EmploymentStatusActive,
		},
		"emp-2": {
			ID:               "emp-2",
			CompanyBranchID:  "branch-1",
			Email:            "gone@acme.test",
			PasswordHash:     hashPassword(t, "workerpass"),
			EmploymentStatus: employee.EmploymentStatusInactive,
		},
	}}
	svc := newTestAuthService(
		&fakeUserRepo{users: map[string]user.User{}},
		employeeRepo,
		&fakeCompanyRepo{companies: map[string]company.Company{}},
	)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{
			CompanyBranchID: "branch-1",
			EmployeeID:      "emp-1",
			Password:        "workerpass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong branch", func(t *testing.T) {
		_, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{
			CompanyBranchID: "branch-2",
			EmployeeID:      "emp-1",
			Password:        "workerpass",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("inactive employee", func(t *testing.T) {
		_, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{
			CompanyBranchID: "branch-1",
			EmployeeID:      "emp-2",
			Password:        "workerpass",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.EmployeeLogin(context.Background(), auth.EmployeeLoginRequest{
			CompanyBranchID: "branch-1",
			EmployeeID:      "ghost",
			Password:        "workerpass",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	companyID := "company-acme"
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"admin@acme.test": {
			ID:        "user-1",
			CompanyID: &companyID,
			Email:     "admin@acme.test",
		},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		companyID: {ID: companyID, Name: "Acme", PackageType: "FREE"},
	}}
	svc := newTestAuthService(userRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, companyRepo)

	t.Run("registered email", func(t *testing.T) {
		resp, err := svc.LoginWithGoogle(context.Background(), "admin@acme.test")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("unregistered email", func(t *testing.T) {
		_, err := svc.LoginWithGoogle(context.Background(), "stranger@gmail.com")
		assert.ErrorIs(t, err, auth.ErrGoogleLoginFailed)
	})
}

type fakeBranchRepo struct {
	branches map[string]company.CompanyBranch
}

func (f *fakeBranchRepo) Create(ctx context.Context, b company.CompanyBranch) (company.CompanyBranch, error) {
	b.ID = "branch-" + b.HqInitial
	f.branches[b.ID] = b
	return b, nil
}

func (f *fakeBranchRepo) GetByID(ctx context.Context, id string) (company.CompanyBranch, error) {
	b, ok := f.branches[id]
	if !ok {
		return company.CompanyBranch{}, pgx.ErrNoRows
	}
	return b, nil
}

func (f *fakeBranchRepo) GetByIDInCompany(ctx context.Context, id string, companyID string) (company.CompanyBranch, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeBranchRepo) GetByEmployeeID(ctx context.Context, employeeID string) (company.CompanyBranch, error) {
	return company.CompanyBranch{}, pgx.ErrNoRows
}

func (f *fakeBranchRepo) ListByCompany(ctx context.Context, companyID string) ([]company.CompanyBranch, error) {
	return nil, nil
}

type fakePositionRepo struct {
	positions []company.JobPosition
}

func (f *fakePositionRepo) Create(ctx context.Context, position company.JobPosition) (company.JobPosition, error) {
	f.positions = append(f.positions, position)
	return position, nil
}

func (f *fakePositionRepo) ListByBranch(ctx context.Context, branchID string) ([]company.JobPosition, error) {
	return f.positions, nil
}

func TestRegisterSeedsDefaults(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]user.User{}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{}}
	branchRepo := &fakeBranchRepo{branches: map[string]company.CompanyBranch{}}
	positionRepo := &fakePositionRepo{}
	svc := newTestAuthService(userRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, companyRepo)
	svc.BranchRepository = branchRepo
	svc.JobPositionRepository = positionRepo

	resp, err := svc.register(context.Background(), auth.RegisterRequest{
		CompanyName: "Acme",
		Industry:    "Retail",
		FullName:    "Admin",
		Email:       "admin@acme.test",
		Password:    "supersecret",
		PhoneNumber: "08123456789",
	}, hashPassword(t, "supersecret"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.UserID)
	assert.NotEmpty(t, resp.CompanyID)

	created := userRepo.users["admin@acme.test"]
	require.NotNil(t, created.CompanyID)
	assert.Equal(t, resp.CompanyID, *created.CompanyID)

	hq, err := branchRepo.GetByID(context.Background(), resp.BranchID)
	require.NoError(t, err)
	assert.Equal(t, "PUSAT", hq.HqInitial)
	assert.Equal(t, resp.CompanyID, hq.CompanyID)

	require.Len(t, positionRepo.positions, 2)
	assert.Equal(t, "Owner", positionRepo.positions[0].Name)
	assert.Equal(t, "Manager", positionRepo.positions[1].Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"taken@acme.test": {ID: "user-1", Email: "taken@acme.test"},
	}}
	svc := newTestAuthService(userRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeCompanyRepo{companies: map[string]company.Company{}})

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		CompanyName: "Acme",
		Industry:    "Retail",
		FullName:    "Admin",
		Email:       "taken@acme.test",
		Password:    "supersecret",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

// uniqueViolationUserRepo simulates the insert losing a race that the email
// count did not catch.
type uniqueViolationUserRepo struct {
	fakeUserRepo
}

func (f *uniqueViolationUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return user.User{}, &pgconn.PgError{Code: "23505"}
}

func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	userRepo := &uniqueViolationUserRepo{fakeUserRepo{users: map[string]user.User{}}}
	svc := newTestAuthService(&userRepo.fakeUserRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeCompanyRepo{companies: map[string]company.Company{}})
	svc.UserRepository = userRepo

	_, err := svc.register(context.Background(), auth.RegisterRequest{
		CompanyName: "Acme",
		Industry:    "Retail",
		FullName:    "Admin",
		Email:       "racer@acme.test",
		Password:    "supersecret",
	}, hashPassword(t, "supersecret"))
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestMe(t *testing.T) {
	companyID := "company-acme"
	companyName := "Acme"
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"admin@acme.test": {
			ID:        "user-1",
			CompanyID: &companyID,
			Email:     "admin@acme.test",
			FullName:  "Admin",
		},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:              "emp-1",
			CompanyBranchID: "branch-1",
			Email:           "worker@acme.test",
			FullName:        "Worker",
			CompanyName:     &companyName,
		},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		companyID: {ID: companyID, Name: companyName, PackageType: "FREE"},
	}}
	svc := newTestAuthService(userRepo, employeeRepo, companyRepo)

	t.Run("user principal", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "user_id", "user-1")
		resp, err := svc.Me(ctx)
		require.NoError(t, err)
		require.NotNil(t, resp.User)
		assert.Nil(t, resp.Employee)
		assert.Equal(t, "Admin", resp.User.FullName)
		require.NotNil(t, resp.User.CompanyName)
		assert.Equal(t, companyName, *resp.User.CompanyName)
	})

	t.Run("employee principal", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "employee_id", "emp-1")
		resp, err := svc.Me(ctx)
		require.NoError(t, err)
		require.NotNil(t, resp.Employee)
		assert.Nil(t, resp.User)
		assert.Equal(t, "Worker", resp.Employee.FullName)
	})

	t.Run("no principal", func(t *testing.T) {
		_, err := svc.Me(context.Background())
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestResetPassword(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"admin@acme.test": {
			ID:           "user-1",
			Email:        "admin@acme.test",
			PasswordHash: hashPassword(t, "oldpassword"),
		},
	}}
	svc := newTestAuthService(userRepo, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeCompanyRepo{companies: map[string]company.Company{}})

	t.Run("success", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), auth.ResetPasswordRequest{
			Email:       "admin@acme.test",
			NewPassword: "newpassword",
		})
		require.NoError(t, err)

		stored := userRepo.users["admin@acme.test"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")))
	})

	t.Run("unknown email", func(t *testing.T) {
		err := svc.ResetPassword(context.Background(), auth.ResetPasswordRequest{
			Email:       "nobody@acme.test",
			NewPassword: "newpassword",
		})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestEmployeeResetPassword(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			Email:        "worker@acme.test",
			PasswordHash: hashPassword(t, "oldpassword"),
		},
	}}
	svc := newTestAuthService(&fakeUserRepo{users: map[string]user.User{}}, employeeRepo, &fakeCompanyRepo{companies: map[string]company.Company{}})

	t.Run("success", func(t *testing.T) {
		err := svc.EmployeeResetPassword(context.Background(), auth.ResetPasswordRequest{
			Email:       "worker@acme.test",
			NewPassword: "newpassword",
		})
		require.NoError(t, err)

		stored := employeeRepo.employees["emp-1"]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")))
	})

	t.Run("unknown email", func(t *testing.T) {
		err := svc.EmployeeResetPassword(context.Background(), auth.ResetPasswordRequest{
			Email:       "nobody@acme.test",
			NewPassword: "newpassword",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}
