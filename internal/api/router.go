package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/communitywatch/backend/internal/api/handlers"
	"github.com/communitywatch/backend/internal/auth"
	"github.com/communitywatch/backend/internal/config"
	"github.com/communitywatch/backend/internal/metrics"
	"github.com/communitywatch/backend/internal/middleware"
	"github.com/communitywatch/backend/internal/services"
)

func NewRouter(cfg config.Config, authSvc *services.AuthService, reportSvc *services.ReportService, tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(authSvc)
	rh := handlers.NewReportHandler(reportSvc)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", ah.Signup)
		r.Post("/auth/login", ah.Login)
		r.With(middleware.RequireAuth(tm)).Get("/auth/me", ah.Me)

		r.Post("/reports", rh.Create)
		r.Get("/reports", rh.List)
	})

	return r
}
