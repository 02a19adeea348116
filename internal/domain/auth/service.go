package auth

import "context"

type AuthService interface {
	// Login authenticates a company admin by email and password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// EmployeeLogin authenticates an employee within a branch.
	EmployeeLogin(ctx context.Context, req EmployeeLoginRequest) (TokenResponse, error)
	// LoginWithGoogle authenticates a company admin via a verified Google
	// account email.
	LoginWithGoogle(ctx context.Context, googleEmail string) (TokenResponse, error)

	// Register creates the admin user, the company, its "PUSAT" headquarters
	// branch and the default job positions in one transaction.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	Me(ctx context.Context) (MeResponse, error)

	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	EmployeeResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
