package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthfirst/portal-api/internal/auth"
	"github.com/healthfirst/portal-api/internal/availability"
	httpmiddleware "github.com/healthfirst/portal-api/internal/http/middleware"
	"github.com/healthfirst/portal-api/internal/patients"
	"github.com/healthfirst/portal-api/internal/providers"
	"github.com/healthfirst/portal-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AuthHandler         *auth.Handler
	PatientsHandler     *patients.Handler
	ProvidersHandler    *providers.Handler
	AvailabilityHandler *availability.Handler
	MetricsHandler      http.Handler
	JWTSecret           string
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured. Registration and
// login are public; listing, lookup, deletion, and availability management
// require a portal access token.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		if cfg.AuthHandler != nil {
			public.With(httpmiddleware.RateLimit(5, 10)).Post("/auth/{portal}/login", cfg.AuthHandler.Login)
		}
		if cfg.PatientsHandler != nil {
			public.Post("/patients", cfg.PatientsHandler.Register)
		}
		if cfg.ProvidersHandler != nil {
			public.Post("/providers", cfg.ProvidersHandler.Register)
		}
	})

	// Token-guarded endpoints
	if cfg.JWTSecret != "" {
		r.Group(func(guarded chi.Router) {
			guarded.Use(httpmiddleware.PortalJWT(cfg.JWTSecret))

			if cfg.PatientsHandler != nil {
				guarded.Get("/patients", cfg.PatientsHandler.List)
				guarded.Get("/patients/{patientID}", cfg.PatientsHandler.Get)
			}
			if cfg.ProvidersHandler != nil {
				guarded.Get("/providers", cfg.ProvidersHandler.List)
				guarded.Route("/providers/{providerID}", func(pr chi.Router) {
					pr.Get("/", cfg.ProvidersHandler.Get)
					pr.Delete("/", cfg.ProvidersHandler.Delete)
					if cfg.AvailabilityHandler != nil {
						pr.Put("/availability", cfg.AvailabilityHandler.Save)
						pr.Get("/availability", cfg.AvailabilityHandler.Get)
					}
				})
			}
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
