package http

import (
	"log/slog"
	"os"

	"github.com/gestoria-hr/workforce-backend-go/internal/handler/http/middleware"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	timeEntryHandler TimeEntryHandler,
	expenseHandler ExpenseHandler,
	vacationHandler VacationHandler,
	anomalyHandler AnomalyHandler,
	alertHandler AlertHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/", timeEntryHandler.Create)
				r.Get("/my", timeEntryHandler.GetMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", timeEntryHandler.List)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", expenseHandler.Create)
				r.Get("/my", expenseHandler.GetMy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", expenseHandler.List)
					r.Post("/{id}/approve", expenseHandler.Approve)
					r.Post("/{id}/reject", expenseHandler.Reject)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", vacationHandler.Create)
				r.Get("/my", vacationHandler.GetMy)
				r.Delete("/{id}", vacationHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", vacationHandler.List)
					r.Post("/{id}/approve", vacationHandler.Approve)
					r.Post("/{id}/reject", vacationHandler.Reject)
				})
			})

			// Management surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/anomalies", func(r chi.Router) {
					r.Get("/", anomalyHandler.List)
					r.Patch("/{id}/status", anomalyHandler.UpdateStatus)
				})

				r.Get("/alerts", alertHandler.List)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
				})
			})
		})
	})
	return r
}
