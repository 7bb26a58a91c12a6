package providers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/healthfirst/portal-api/internal/observability/metrics"
	"github.com/healthfirst/portal-api/internal/registration"
	"github.com/healthfirst/portal-api/pkg/logging"
)

// Handler handles HTTP requests for the provider portal
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.PortalMetrics
}

// NewHandler creates a new providers handler
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.PortalMetrics) *Handler {
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

type errorResponse struct {
	Errors registration.Errors `json:"errors"`
}

// Register handles POST /providers requests.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterProviderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := req.toForm()

	var created *Provider
	err := form.Submit(h.repo, func(rec registration.ProviderRecord) {
		created, _ = h.repo.Create(r.Context(), rec)
	})
	if err != nil {
		h.metrics.ObserveRegistration("provider", "rejected")

		status := http.StatusBadRequest
		var dup *registration.DuplicateError
		if errors.As(err, &dup) {
			status = http.StatusConflict
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(errorResponse{Errors: form.Errors()})
		return
	}

	h.metrics.ObserveRegistration("provider", "accepted")
	h.logger.Info("provider registered", "id", created.ID, "license", created.License)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// ListProvidersResponse is the response for listing providers
type ListProvidersResponse struct {
	Providers []*Provider `json:"providers"`
	Count     int         `json:"count"`
}

// List handles GET /providers requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list providers", "error", err)
		http.Error(w, "failed to list providers", http.StatusInternalServerError)
		return
	}

	response := ListProvidersResponse{
		Providers: providers,
		Count:     len(providers),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get handles GET /providers/{providerID} requests
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerID")

	provider, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			http.Error(w, "provider not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get provider", "error", err, "id", id)
		http.Error(w, "failed to get provider", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(provider)
}

// Delete handles DELETE /providers/{providerID} requests
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerID")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			http.Error(w, "provider not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete provider", "error", err, "id", id)
		http.Error(w, "failed to delete provider", http.StatusInternalServerError)
		return
	}

	h.logger.Info("provider deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
