package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	analysisService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/analysis"
	attendanceService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/report"
	scheduleService "github.com/cmlabs-hris/hr-dashboard-go/internal/service/schedule"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	logLevel, _ := config.ParseLogLevel(cfg.App.LogLevel)
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := sse.NewHub()
	store := memory.NewStore(memory.WithNotifier(hub))

	if cfg.Seed.Enabled {
		seed := cfg.Seed.RandSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed>>1))
		if _, err := fixtures.Seed(ctx, store, time.Now(), rng); err != nil {
			slog.Error("Error seeding store", "error", err)
			os.Exit(1)
		}
	}

	departmentRepo := memory.NewDepartmentRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	dashboardRepo := memory.NewDashboardRepository(store)
	reportRepo := memory.NewReportRepository(store)
	analysisRepo := memory.NewAnalysisRepository(store)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       logLevel,
		RequestTimeout: cfg.App.RequestTimeout,
	}, logger, appHTTP.Handlers{
		Catalog:    appHTTP.NewCatalogHandler(),
		Department: appHTTP.NewDepartmentHandler(departmentService.NewDepartmentService(departmentRepo, employeeRepo)),
		Employee:   appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, departmentRepo)),
		Schedule:   appHTTP.NewScheduleHandler(scheduleService.NewScheduleService(scheduleRepo, employeeRepo)),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, departmentRepo)),
		Leave:      appHTTP.NewLeaveHandler(leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, departmentRepo)),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardService.NewDashboardService(dashboardRepo)),
		Report:     appHTTP.NewReportHandler(reportService.NewReportService(reportRepo)),
		Analysis:   appHTTP.NewAnalysisHandler(analysisService.NewAnalysisService(analysisRepo)),
		Event:      appHTTP.NewEventHandler(hub, memory.Collections),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end on shutdown so open event streams close.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped", "open_subscribers", hub.TotalSubscribers())
}
