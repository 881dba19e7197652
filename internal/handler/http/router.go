package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	AppEnv         string
	AllowedOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Client     ClientHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Event      EventHandler
	Sync       SyncHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.AppEnv != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Token travels in the query string
		r.Get("/events/stream", h.Event.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Get("/auth/me", h.Auth.Me)
			r.Get("/events/token", h.Event.Token)

			r.With(middleware.RequirePermission(user.PermissionDashboardView)).
				Get("/dashboard", h.Dashboard.Today)

			// Manager and admin
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Route("/clients", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionClientViewAll)).Get("/", h.Client.List)
					r.With(middleware.RequirePermission(user.PermissionClientCreate)).Post("/", h.Client.Create)
				})

				r.Route("/employees", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/", h.Employee.List)
					r.With(middleware.RequirePermission(user.PermissionEmployeeCreate)).Post("/", h.Employee.Create)
				})

				r.Route("/attendance", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.List)
					r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Post("/", h.Attendance.Create)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
						r.Put("/{id}", h.Attendance.Update)
						r.Delete("/{id}", h.Attendance.Delete)
					})
				})

				r.With(middleware.RequirePermission(user.PermissionDataRefresh)).
					Post("/sync/refresh", h.Sync.Refresh)
			})

			r.With(middleware.RequirePermission(user.PermissionReportsExport)).
				Get("/reports/attendance", h.Report.ExportAttendance)
		})
	})
	return r
}
