package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/config"
	"github.com/clinika/kiosk-backend-go/internal/fixtures"
	appHTTP "github.com/clinika/kiosk-backend-go/internal/handler/http"
	"github.com/clinika/kiosk-backend-go/internal/pkg/cron"
	"github.com/clinika/kiosk-backend-go/internal/pkg/database"
	"github.com/clinika/kiosk-backend-go/internal/pkg/email"
	"github.com/clinika/kiosk-backend-go/internal/pkg/jwt"
	"github.com/clinika/kiosk-backend-go/internal/pkg/mirror"
	"github.com/clinika/kiosk-backend-go/internal/repository/postgresql"
	adminService "github.com/clinika/kiosk-backend-go/internal/service/admin"
	attendanceService "github.com/clinika/kiosk-backend-go/internal/service/attendance"
	employeeService "github.com/clinika/kiosk-backend-go/internal/service/employee"
	holidayService "github.com/clinika/kiosk-backend-go/internal/service/holiday"
	reportService "github.com/clinika/kiosk-backend-go/internal/service/report"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	txManager := postgresql.NewTxManager(db)

	if err := fixtures.SeedAdminAccounts(context.Background(), adminRepo, cfg.Admin.Accounts); err != nil {
		fmt.Println("Error seeding admin accounts:", err)
		os.Exit(1)
	}

	var mirrorStore mirror.Store
	if cfg.Mirror.BaseURL != "" {
		mirrorStore = mirror.NewHTTPStore(cfg.Mirror.BaseURL, cfg.Mirror.APIKey)
	} else {
		mirrorStore = mirror.NewNoopStore()
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dispatcher := email.NewReportDispatcher(cfg.SMTP, cfg.Report.Recipient)

	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo, mirrorStore, loc)
	adminSvc := adminService.NewAdminService(adminRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, mirrorStore)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, dispatcher)

	scheduler := cron.NewReportScheduler(cron.NewCalendar(holidayRepo), reportSvc, loc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		appHTTP.NewKioskHandler(attendanceSvc),
		appHTTP.NewAdminHandler(adminSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewReportHandler(reportSvc, loc),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "port", cfg.App.Port, "timezone", cfg.App.Timezone)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown error", "error", err)
		}
	}
}
