package availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/healthfirst/portal-api/internal/providers"
	"github.com/healthfirst/portal-api/internal/registration"
	"github.com/healthfirst/portal-api/pkg/logging"
)

// Handler handles HTTP requests for provider availability
type Handler struct {
	store     *Store
	providers providers.Repository
	logger    *logging.Logger
}

// NewHandler creates a new availability handler. The provider repository is
// consulted so schedules can only be saved for registered providers.
func NewHandler(store *Store, repo providers.Repository, logger *logging.Logger) *Handler {
	return &Handler{
		store:     store,
		providers: repo,
		logger:    logger,
	}
}

type errorResponse struct {
	Errors registration.Errors `json:"errors"`
}

// Save handles PUT /providers/{providerID}/availability requests.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerID")

	if _, err := h.providers.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, providers.ErrProviderNotFound) {
			http.Error(w, "provider not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to look up provider", "error", err, "id", id)
		http.Error(w, "failed to save availability", http.StatusInternalServerError)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	schedule, err := h.store.Save(r.Context(), id, req)
	if err != nil {
		var fieldErrs registration.Errors
		if errors.As(err, &fieldErrs) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Errors: fieldErrs})
			return
		}
		h.logger.Error("failed to save availability", "error", err, "id", id)
		http.Error(w, "failed to save availability", http.StatusInternalServerError)
		return
	}

	h.logger.Info("availability saved", "provider_id", id, "enabled_days", len(schedule.Week))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// Get handles GET /providers/{providerID}/availability requests.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerID")

	schedule, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get availability", "error", err, "id", id)
		http.Error(w, "failed to get availability", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}
