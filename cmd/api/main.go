package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/madrasahq/school-hr-backend/internal/config"
	appHTTP "github.com/madrasahq/school-hr-backend/internal/handler/http"
	"github.com/madrasahq/school-hr-backend/internal/pkg/database"
	"github.com/madrasahq/school-hr-backend/internal/pkg/jwt"
	"github.com/madrasahq/school-hr-backend/internal/pkg/oauth"
	"github.com/madrasahq/school-hr-backend/internal/pkg/storage"
	"github.com/madrasahq/school-hr-backend/internal/repository/postgresql"
	absenceService "github.com/madrasahq/school-hr-backend/internal/service/absence"
	authService "github.com/madrasahq/school-hr-backend/internal/service/auth"
	dashboardService "github.com/madrasahq/school-hr-backend/internal/service/dashboard"
	employeeService "github.com/madrasahq/school-hr-backend/internal/service/employee"
	reportService "github.com/madrasahq/school-hr-backend/internal/service/report"
	settingsService "github.com/madrasahq/school-hr-backend/internal/service/settings"
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
	absenceRepo := postgresql.NewAbsenceRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	if !cfg.GoogleOAuthEnabled() {
		fmt.Println("Google OAuth is not configured; social login routes will reject requests")
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, absenceRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, absenceRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, employeeRepo, absenceRepo, fileStorage)

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Absence:   appHTTP.NewAbsenceHandler(absenceSvc),
		Report:    appHTTP.NewReportHandler(reportSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Settings:  appHTTP.NewSettingsHandler(settingsSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
