package main

import (
	"fmt"
	"net/http"

	"github.com/schichtwerk/schichtplan-backend-go/internal/config"
	appHTTP "github.com/schichtwerk/schichtplan-backend-go/internal/handler/http"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/cron"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/database"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/jwt"
	"github.com/schichtwerk/schichtplan-backend-go/internal/repository/postgresql"
	automationService "github.com/schichtwerk/schichtplan-backend-go/internal/service/automation"
	notificationService "github.com/schichtwerk/schichtplan-backend-go/internal/service/notification"
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
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	availabilityRepo := postgresql.NewAvailabilityRepository(db)
	swapRepo := postgresql.NewSwapRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	timeAccountRepo := postgresql.NewTimeAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	workspaceRepo := postgresql.NewWorkspaceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo)
	automationSvc := automationService.NewAutomationService(
		txManager,
		shiftRepo,
		absenceRepo,
		availabilityRepo,
		swapRepo,
		timeEntryRepo,
		timeAccountRepo,
		employeeRepo,
		notificationSvc,
	)

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewAutomationJobs(automationSvc, workspaceRepo).Register(scheduler, cfg.Cron.Interval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	automationHandler := appHTTP.NewAutomationHandler(automationSvc)
	router := appHTTP.NewRouter(JWTService, automationHandler, cfg.App.Env, cfg.App.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
