package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/mobinh8585/attendance-system/internal/config"
	appHTTP "github.com/mobinh8585/attendance-system/internal/handler/http"
	"github.com/mobinh8585/attendance-system/internal/pkg/database"
	"github.com/mobinh8585/attendance-system/internal/pkg/jwt"
	"github.com/mobinh8585/attendance-system/internal/repository/postgresql"
	attendanceService "github.com/mobinh8585/attendance-system/internal/service/attendance"
	authService "github.com/mobinh8585/attendance-system/internal/service/auth"
	reportService "github.com/mobinh8585/attendance-system/internal/service/report"
	workerService "github.com/mobinh8585/attendance-system/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(adminRepo, workerRepo, jwtService, cfg.Admin)
	workerSvc := workerService.NewWorkerService(workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, workerRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, workerRepo)

	if err := authSvc.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatal("Error seeding admin credential: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		workerHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
