package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/auth"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/company"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/employee"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/user"
	"github.com/kerjaplus/wfm-backend-go/internal/fixtures"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/jwt"
	"github.com/kerjaplus/wfm-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	company.CompanyRepository
	company.BranchRepository
	company.JobPositionRepository
	jwtService jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	branchRepo company.BranchRepository,
	positionRepo company.JobPositionRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                    db,
		UserRepository:        userRepo,
		EmployeeRepository:    employeeRepo,
		CompanyRepository:     companyRepo,
		BranchRepository:      branchRepo,
		JobPositionRepository: positionRepo,
		jwtService:            jwtService,
	}
}

// Login implements auth.AuthService. Every failure path returns
// auth.ErrInvalidCredentials so responses never reveal whether the email is
// registered.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueUserToken(ctx, userData)
}

// EmployeeLogin implements auth.AuthService. The branch check runs before the
// password compare but both failures collapse into ErrInvalidCredentials.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	employeeData, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if employeeData.CompanyBranchID != req.CompanyBranchID {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if employeeData.EmploymentStatus != employee.EmploymentStatusActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employeeData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateEmployeeToken(employeeData.ID, employeeData.CompanyBranchID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate employee token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// LoginWithGoogle implements auth.AuthService. The email must already belong
// to a registered admin; Google login never creates accounts.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrGoogleLoginFailed
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.issueUserToken(ctx, userData)
}

func (a *AuthServiceImpl) issueUserToken(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var companyID, packageType string
	if userData.CompanyID != nil {
		companyData, err := a.CompanyRepository.GetByID(ctx, *userData.CompanyID)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to get company: %w", err)
		}
		companyID = companyData.ID
		packageType = companyData.PackageType
	}

	token, expiresAt, err := a.jwtService.GenerateUserToken(userData.ID, companyID, packageType)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate user token: %w", err)
	}

	return auth.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Register implements auth.AuthService. The admin user, the company, its
// headquarters branch and the default job positions are created in one
// transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	count, err := a.UserRepository.CountByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to count users by email: %w", err)
	}
	if count > 0 {
		return auth.RegisterResponse{}, auth.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var response auth.RegisterResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		response, err = a.register(txCtx, req, string(passwordHash))
		return err
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return response, nil
}

func (a *AuthServiceImpl) register(ctx context.Context, req auth.RegisterRequest, passwordHash string) (auth.RegisterResponse, error) {
	userData, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		// Two registrations with the same email can race past the count
		// check; the unique index settles it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.RegisterResponse{}, auth.ErrEmailAlreadyExists
		}
		return auth.RegisterResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	companyData, err := a.CompanyRepository.Create(ctx, company.Company{
		Name:     req.CompanyName,
		Industry: req.Industry,
	})
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	branch, err := a.BranchRepository.Create(ctx, fixtures.GetDefaultBranch(companyData.ID, req.Email, req.PhoneNumber))
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create headquarters branch: %w", err)
	}

	for _, position := range fixtures.GetDefaultPositions(branch.ID) {
		if _, err := a.JobPositionRepository.Create(ctx, position); err != nil {
			return auth.RegisterResponse{}, fmt.Errorf("failed to create job position: %w", err)
		}
	}

	if err := a.UserRepository.UpdateCompanyID(ctx, userData.ID, companyData.ID); err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to link user to company: %w", err)
	}

	return auth.RegisterResponse{
		UserID:      userData.ID,
		Email:       userData.Email,
		FullName:    userData.FullName,
		CompanyID:   companyData.ID,
		CompanyName: companyData.Name,
		BranchID:    branch.ID,
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	if userID, ok := ctx.Value("user_id").(string); ok && userID != "" {
		userData, err := a.UserRepository.GetByID(ctx, userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return auth.MeResponse{}, user.ErrUserNotFound
			}
			return auth.MeResponse{}, fmt.Errorf("failed to get user: %w", err)
		}

		profile := auth.UserProfile{
			UserID:      userData.ID,
			FullName:    userData.FullName,
			Email:       userData.Email,
			PhoneNumber: userData.PhoneNumber,
			CompanyID:   userData.CompanyID,
		}
		if userData.CompanyID != nil {
			companyData, err := a.CompanyRepository.GetByID(ctx, *userData.CompanyID)
			if err != nil {
				return auth.MeResponse{}, fmt.Errorf("failed to get company: %w", err)
			}
			profile.CompanyName = &companyData.Name
			profile.PackageType = &companyData.PackageType
		}

		return auth.MeResponse{User: &profile}, nil
	}

	if employeeID, ok := ctx.Value("employee_id").(string); ok && employeeID != "" {
		employeeData, err := a.EmployeeRepository.GetProfile(ctx, employeeID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return auth.MeResponse{}, employee.ErrEmployeeNotFound
			}
			return auth.MeResponse{}, fmt.Errorf("failed to get employee profile: %w", err)
		}

		return auth.MeResponse{Employee: &auth.EmployeeProfile{
			EmployeeID:      employeeData.ID,
			FullName:        employeeData.FullName,
			Email:           employeeData.Email,
			CompanyBranchID: employeeData.CompanyBranchID,
			CompanyName:     employeeData.CompanyName,
			JobPosition:     employeeData.JobPositionName,
		}}, nil
	}

	return auth.MeResponse{}, auth.ErrInvalidToken
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.UserRepository.UpdatePassword(ctx, userData.ID, string(passwordHash))
}

// EmployeeResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) EmployeeResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	employeeData, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee by email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.EmployeeRepository.UpdatePassword(ctx, employeeData.ID, string(passwordHash))
}
