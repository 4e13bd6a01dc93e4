package http

import (
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterConfig carries the settings the router needs from config.
type RouterConfig struct {
	AllowedOrigins []string
	LogLevel       slog.Level
	RequestTimeout time.Duration
}

type Handlers struct {
	Catalog    CatalogHandler
	Department DepartmentHandler
	Employee   EmployeeHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Analysis   AnalysisHandler
	Event      EventHandler
}

func NewRouter(cfg RouterConfig, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "Content-Language"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Locale)

		// Streaming stays outside the timeout group.
		r.Get("/events", h.Event.Stream)

		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.Timeout(timeout))

			r.Get("/catalog", h.Catalog.GetCatalog)
			r.Get("/navigation", h.Catalog.GetNavigation)

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.Get)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Post("/deactivate", h.Employee.Deactivate)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.List)
				r.Post("/", h.Schedule.Create)
				r.Get("/day/{date}", h.Schedule.GetDay)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Schedule.Get)
					r.Put("/", h.Schedule.Update)
					r.Delete("/", h.Schedule.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Create)
				r.Get("/{id}", h.Attendance.Get)
				r.Put("/{id}", h.Attendance.Update)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.ListRequests)
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/counts", h.Leave.CountRequests)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Leave.GetRequest)
					r.Put("/", h.Leave.UpdateRequest)
					r.Post("/approve", h.Leave.ApproveRequest)
					r.Post("/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/attendance-daily", h.Dashboard.GetDailyAttendanceStats)
			})

			r.Get("/reports/attendance", h.Report.GetAttendanceReport)
			r.Get("/analysis/attendance", h.Analysis.GetAttendanceAnalysis)
		})
	})
	return r
}
