package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/domain/auth"
	"github.com/kerjaplus/wfm-backend-go/internal/handler/http/response"
)

// UserRequired accepts company-admin tokens only and copies the identity
// claims into the request context for the service layer.
func UserRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "user" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		companyID, _ := claims["company_id"].(string)
		packageType, _ := claims["package_type"].(string)

		ctx := context.WithValue(r.Context(), "user_id", userID)
		ctx = context.WithValue(ctx, "company_id", companyID)
		ctx = context.WithValue(ctx, "package_type", packageType)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeRequired accepts employee tokens only.
func EmployeeRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "employee" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		companyBranchID, _ := claims["company_branch_id"].(string)

		ctx := context.WithValue(r.Context(), "employee_id", employeeID)
		ctx = context.WithValue(ctx, "company_branch_id", companyBranchID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
