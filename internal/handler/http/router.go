package http

import (
	"log/slog"
	"os"

	"github.com/clinika/kiosk-backend-go/internal/config"
	"github.com/clinika/kiosk-backend-go/internal/handler/http/middleware"
	"github.com/clinika/kiosk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	kioskHandler KioskHandler,
	adminHandler AdminHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clinika-kiosk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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

		// Tablet endpoints: no session, every request carries credentials.
		r.Route("/kiosk", func(r chi.Router) {
			r.Post("/clock-in", kioskHandler.ClockIn)
			r.Post("/clock-out", kioskHandler.ClockOut)
			r.Post("/setup", kioskHandler.Setup)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", adminHandler.Login)

			// Console endpoints require an admin access token.
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/{id}", employeeHandler.GetByID)
					r.Post("/{id}/reset-credential", employeeHandler.ResetCredential)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				r.Route("/holidays", func(r chi.Router) {
					r.Get("/", holidayHandler.List)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance", reportHandler.Download)
					r.Post("/dispatch", reportHandler.Dispatch)
				})
			})
		})
	})
	return r
}
