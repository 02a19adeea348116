package main

import (
	"fmt"
	"net/http"

	"github.com/kerjaplus/wfm-backend-go/internal/config"
	appHTTP "github.com/kerjaplus/wfm-backend-go/internal/handler/http"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/database"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/jwt"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/oauth"
	"github.com/kerjaplus/wfm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjaplus/wfm-backend-go/internal/service/attendance"
	authService "github.com/kerjaplus/wfm-backend-go/internal/service/auth"
	shiftService "github.com/kerjaplus/wfm-backend-go/internal/service/shift"
	submissionService "github.com/kerjaplus/wfm-backend-go/internal/service/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	positionRepo := postgresql.NewJobPositionRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	submissionRepo := postgresql.NewSubmissionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, companyRepo, branchRepo, positionRepo, JWTService)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, assignmentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, assignmentRepo, branchRepo, cfg.Attendance)
	submissionSvc := submissionService.NewSubmissionService(db, submissionRepo, shiftRepo, assignmentRepo, employeeRepo, branchRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, GoogleService)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	submissionHandler := appHTTP.NewSubmissionHandler(submissionSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		shiftHandler,
		attendanceHandler,
		submissionHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
