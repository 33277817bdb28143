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
	"github.com/oredipendenti/backend-go/internal/config"
	"github.com/oredipendenti/backend-go/internal/handler/http/middleware"
	"github.com/oredipendenti/backend-go/internal/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	timesheetHandler TimesheetHandler,
	productHandler ProductHandler,
	ratingHandler RatingHandler,
	employeeHandler EmployeeHandler,
	uploadHandler UploadHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "oredipendenti"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Handle("/metrics", promhttp.Handler())

	// Stored product images, served directly from local storage.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// The old uploader contract. Method handling, including the 405, lives in
	// the handler itself.
	r.Handle("/api/upload-product-image", http.HandlerFunc(uploadHandler.UploadProductImage))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/timesheet", func(r chi.Router) {
				r.Route("/days/{date}", func(r chi.Router) {
					r.Get("/", timesheetHandler.GetDay)
					r.Post("/", timesheetHandler.SaveDay)
				})
				r.Route("/months/{month}", func(r chi.Router) {
					r.Get("/", timesheetHandler.GetMonth)
					r.Get("/summary", timesheetHandler.GetSummary)
				})
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.With(middleware.AdminOnly).Post("/", productHandler.Create)
				r.Route("/{productID}", func(r chi.Router) {
					r.Get("/", productHandler.Get)
					r.With(middleware.AdminOnly).Put("/", productHandler.Update)
					r.With(middleware.AdminOnly).Delete("/", productHandler.Delete)

					// Singular rating is the caller's own vote, plural the
					// full list for the product.
					r.Route("/rating", func(r chi.Router) {
						r.Get("/", ratingHandler.GetOwn)
						r.Put("/", ratingHandler.Rate)
					})
					r.Get("/ratings", ratingHandler.ListForProduct)
				})
			})

			r.Get("/dashboard/ratings", ratingHandler.Dashboard)

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
				})

				r.Route("/timesheet", func(r chi.Router) {
					r.Route("/months/{month}", func(r chi.Router) {
						r.Get("/", timesheetHandler.GetAllSummaries)
						r.Get("/report", timesheetHandler.GetMonthlyReport)
					})
					r.Route("/employees/{employeeID}", func(r chi.Router) {
						r.Route("/days/{date}", func(r chi.Router) {
							r.Get("/", timesheetHandler.GetEmployeeDay)
							r.Post("/", timesheetHandler.ReplaceEmployeeDay)
						})
						r.Get("/months/{month}", timesheetHandler.GetEmployeeMonth)
					})
				})
			})
		})
	})

	return r
}
