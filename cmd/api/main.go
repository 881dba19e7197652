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

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/attendance-backend-go/internal/service/auth"
	clientService "github.com/cmlabs-hris/attendance-backend-go/internal/service/client"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	store := state.NewStore(repos.Client, repos.Employee, repos.Attendance)
	if _, err := store.Load(ctx); err != nil {
		// Serve with an empty mirror; POST /sync/refresh retries.
		slog.Error("Initial record store load failed", "error", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewStoreJobs(store, cfg.Store.ReloadInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	hub := sse.NewHub()
	appHTTP.BroadcastChanges(store, hub)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authService := serviceAuth.NewAuthService(repos.Transactor, repos.User, JWTService, repos.RefreshToken, hub)
	clientSvc := clientService.NewClientService(repos.Client, store)
	employeeSvc := employeeService.NewEmployeeService(repos.Employee, store)
	attendanceSvc := attendanceService.NewAttendanceService(repos.Attendance, store, loc)
	reportSvc := reportService.NewReportService(store, loc)
	dashboardSvc := dashboardService.NewDashboardService(store, loc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, authService),
			Client:     appHTTP.NewClientHandler(clientSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
			Event:      appHTTP.NewEventHandler(hub, JWTService),
			Sync:       appHTTP.NewSyncHandler(store),
		},
	)

	// No WriteTimeout: event streams stay open.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "driver", cfg.Store.Driver)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
