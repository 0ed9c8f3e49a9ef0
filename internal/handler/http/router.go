package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worksight/worksight-backend-go/internal/domain/user"
	"github.com/worksight/worksight-backend-go/internal/handler/http/middleware"
	"github.com/worksight/worksight-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService jwt.Service
	Auth       AuthHandler
	Attendance AttendanceHandler
	Analytics  AnalyticsHandler
	Directory  *DirectoryHandler
	Users      UserHandler

	AppName        string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", deps.AppName),
		slog.String("env", deps.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.Refresh)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.Auth.GoogleLogin)
				r.Get("/google/callback", deps.Auth.GoogleCallback)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
				r.Post("/logout", deps.Auth.Logout)
				r.Get("/me", deps.Auth.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/checkin", deps.Attendance.CheckIn)
				r.Post("/checkout", deps.Attendance.CheckOut)
				r.Get("/today", deps.Attendance.Today)
				r.Get("/history", deps.Attendance.History)

				// Supervisors and admins
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/all", deps.Attendance.List)
				})

				r.Route("/analytics", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAnalyticsView))
					r.Get("/summary", deps.Analytics.Summary)
					r.Get("/late-frequency", deps.Analytics.LateFrequency)
					r.Get("/absent-trends", deps.Analytics.AbsentTrends)
					r.Get("/by-location", deps.Analytics.ByLocation)
					r.Get("/by-department", deps.Analytics.ByDepartment)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", deps.Directory.ListLocations)
				r.Get("/{id}", deps.Directory.GetLocation)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly())
					r.Post("/", deps.Directory.CreateLocation)
					r.Put("/{id}", deps.Directory.UpdateLocation)
					r.Delete("/{id}", deps.Directory.DeleteLocation)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", deps.Directory.ListDepartments)
				r.Get("/{id}", deps.Directory.GetDepartment)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly())
					r.Post("/", deps.Directory.CreateDepartment)
					r.Put("/{id}", deps.Directory.UpdateDepartment)
					r.Delete("/{id}", deps.Directory.DeleteDepartment)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", deps.Directory.ListShifts)
				r.Get("/location/{locationID}", deps.Directory.GetShift)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly())
					r.Put("/location/{locationID}", deps.Directory.UpsertShift)
					r.Delete("/location/{locationID}", deps.Directory.DeleteShift)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserView))
				r.Get("/", deps.Users.List)
				r.Get("/supervisors", deps.Users.ListSupervisors)
				r.Get("/employees", deps.Users.ListEmployees)
				r.Get("/{id}", deps.Users.Get)
				r.Get("/{id}/employees", deps.Users.ListTeam)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly())
					r.Post("/", deps.Users.Create)
					r.Put("/{id}", deps.Users.Update)
					r.Delete("/{id}", deps.Users.Deactivate)
				})
			})
		})
	})

	return r
}
