package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/schichtwerk/schichtplan-backend-go/internal/handler/http/middleware"
	"github.com/schichtwerk/schichtplan-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, automationHandler AutomationHandler, env string, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "schichtplan-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication + manager role
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireManager)

			r.Route("/automations", func(r chi.Router) {
				r.Post("/check-conflicts", automationHandler.CheckConflicts)
				r.Post("/recurring-shifts", automationHandler.RecurringShifts)
				r.Post("/generate-time-entries", automationHandler.GenerateTimeEntries)
				r.Post("/overtime-check", automationHandler.OvertimeCheck)
				r.Post("/payroll-lock", automationHandler.PayrollLock)

				r.Post("/absences/{id}/auto-approve", automationHandler.AutoApproveAbsence)
				r.Post("/swaps/{id}/auto-approve", automationHandler.AutoApproveSwap)
				r.Post("/employees/{id}/recalculate-time-account", automationHandler.RecalculateTimeAccount)
			})
		})
	})
	return r
}
