package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateCompanyID(ctx context.Context, id string, companyID string) error
}
