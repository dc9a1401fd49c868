package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/madrasahq/school-hr-backend/internal/config"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/middleware"
	"github.com/madrasahq/school-hr-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Employee  EmployeeHandler
	Absence   AbsenceHandler
	Report    ReportHandler
	Dashboard DashboardHandler
	Settings  SettingsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "school-hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded files (the school logo) are served directly.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Post("/import", h.Employee.Import)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/absences", h.Absence.ListByEmployee)
					r.Get("/stats", h.Absence.EmployeeStats)
				})
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/", h.Absence.List)
				r.Post("/", h.Absence.Register)
				r.Put("/{id}", h.Absence.Update)
				r.Delete("/{id}", h.Absence.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", h.Report.Daily)
				r.Get("/weekly", h.Report.Weekly)
				r.Get("/range", h.Report.Range)
				r.Get("/employees", h.Report.AllEmployees)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/today", h.Dashboard.GetTodayStats)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Save)
				r.Post("/logo", h.Settings.UploadLogo)
				r.Get("/backup", h.Settings.Backup)
				r.Post("/restore", h.Settings.Restore)
				r.Delete("/data", h.Settings.ClearData)
			})
		})
	})
	return r
}
