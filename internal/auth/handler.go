package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/healthfirst/portal-api/internal/observability/metrics"
	"github.com/healthfirst/portal-api/internal/registration"
	"github.com/healthfirst/portal-api/pkg/logging"
)

// Handler handles HTTP requests for portal logins
type Handler struct {
	service *Service
	logger  *logging.Logger
	metrics *metrics.PortalMetrics
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, logger *logging.Logger, m *metrics.PortalMetrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

// LoginRequest is the request body for portal logins.
type LoginRequest struct {
	Credential string `json:"credential"`
	Password   string `json:"password"`
}

type errorResponse struct {
	Errors registration.Errors `json:"errors"`
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// Login handles POST /auth/{portal}/login requests.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	portal := Portal(chi.URLParam(r, "portal"))

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	session, err := h.service.Login(r.Context(), portal, req.Credential, req.Password)
	h.metrics.ObserveLoginLatency(string(portal), time.Since(start).Seconds())

	if err != nil {
		h.metrics.ObserveLogin(string(portal), outcome(err))

		var fieldErrs registration.Errors
		if errors.As(err, &fieldErrs) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Errors: fieldErrs})
			return
		}

		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("login failed", "portal", portal, "error", err)
		} else {
			h.logger.Info("login rejected", "portal", portal, "reason", err.Error())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(authErrorResponse{Error: err.Error()})
		return
	}

	h.metrics.ObserveLogin(string(portal), "success")
	h.logger.Info("login succeeded", "portal", portal)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownPortal):
		return http.StatusBadRequest
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountLocked):
		return http.StatusLocked
	case errors.Is(err, ErrLoginInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrNetwork):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, ErrAccountLocked):
		return "locked"
	case errors.Is(err, ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	case errors.Is(err, ErrLoginInFlight):
		return "in_flight"
	}
	return "invalid"
}
