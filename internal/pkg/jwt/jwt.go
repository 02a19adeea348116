package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/config"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateUserToken issues a company-admin token. Claims: user_id,
	// company_id, package_type.
	GenerateUserToken(userID string, companyID string, packageType string) (token string, expiresAt int64, err error)
	// GenerateEmployeeToken issues an employee token. Claims: employee_id,
	// company_branch_id.
	GenerateEmployeeToken(employeeID string, companyBranchID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	userExpiration     string
	employeeExpiration string
	tokenAuth          *jwtauth.JWTAuth
}

func NewJWTService(cfg config.JWTConfig) Service {
	return &JWTService{
		userExpiration:     cfg.UserExpiration,
		employeeExpiration: cfg.EmployeeExpiration,
		tokenAuth:          jwtauth.New("HS256", []byte(cfg.Secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateUserToken(userID string, companyID string, packageType string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.userExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":      userID,
		"company_id":   companyID,
		"package_type": packageType,
		"type":         "user",
		"exp":          expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateEmployeeToken(employeeID string, companyBranchID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.employeeExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id":       employeeID,
		"company_branch_id": companyBranchID,
		"type":              "employee",
		"exp":               expiresAt,
	})
	return tokenString, expiresAt, err
}
