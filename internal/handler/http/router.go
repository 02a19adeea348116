package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjaplus/wfm-backend-go/internal/config"
	"github.com/kerjaplus/wfm-backend-go/internal/handler/http/middleware"
	"github.com/kerjaplus/wfm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	submissionHandler SubmissionHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kerjaplus-wfm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/reset-password", authHandler.ResetPassword)
			r.Post("/employee/reset-password", authHandler.EmployeeResetPassword)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/employee", authHandler.EmployeeLogin)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(jwtauth.Authenticator(jwtService.JWTAuth()))

			// Either principal
			r.Group(func(r chi.Router) {
				r.Get("/me", authHandler.Me)
			})

			// Company admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.UserRequired)

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.List)
					r.Post("/", shiftHandler.Create)
					r.Delete("/{shiftID}", shiftHandler.Delete)

					r.Route("/assignments", func(r chi.Router) {
						r.Get("/", shiftHandler.ListAssignments)
						r.Post("/", shiftHandler.Assign)
						r.Put("/", shiftHandler.UpdateAssignment)
					})
				})

				r.Route("/submissions", func(r chi.Router) {
					r.Put("/{submissionID}/decision", submissionHandler.Decide)
				})
			})

			// Employee only
			r.Group(func(r chi.Router) {
				r.Use(middleware.EmployeeRequired)

				r.Get("/shift-info", shiftHandler.GetShiftInfo)

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.Today)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
				})

				r.Route("/my-submissions", func(r chi.Router) {
					r.Get("/", submissionHandler.History)
					r.Post("/sick", submissionHandler.CreateSick)
					r.Post("/permission", submissionHandler.CreatePermission)
					r.Post("/leave", submissionHandler.CreateLeave)
					r.Post("/mutation", submissionHandler.CreateMutation)
					r.Post("/change-shift", submissionHandler.CreateChangeShift)
					r.Delete("/{submissionID}", submissionHandler.Delete)
				})
			})
		})
	})

	return r
}
