package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/healthfirst/portal-api/internal/observability/metrics"
	"github.com/healthfirst/portal-api/internal/registration"
	"github.com/healthfirst/portal-api/pkg/logging"
)

// Handler handles HTTP requests for the patient portal
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.PortalMetrics
}

// NewHandler creates a new patients handler
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.PortalMetrics) *Handler {
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// errorResponse is the field-error envelope shared by both portals.
type errorResponse struct {
	Errors registration.Errors `json:"errors"`
}

// Register handles POST /patients requests. The submission pipeline validates
// the snapshot and checks duplicates against the repository before anything is
// stored.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPatientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := req.toForm()

	var created *Patient
	err := form.Submit(h.repo, func(rec registration.PatientRecord) {
		created, _ = h.repo.Create(r.Context(), rec)
	})
	if err != nil {
		h.metrics.ObserveRegistration("patient", "rejected")

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

	h.metrics.ObserveRegistration("patient", "accepted")
	h.logger.Info("patient registered", "id", created.ID, "email", created.Email)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// ListPatientsResponse is the response for listing patients
type ListPatientsResponse struct {
	Patients []*Patient `json:"patients"`
	Count    int        `json:"count"`
}

// List handles GET /patients requests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list patients", "error", err)
		http.Error(w, "failed to list patients", http.StatusInternalServerError)
		return
	}

	response := ListPatientsResponse{
		Patients: patients,
		Count:    len(patients),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get handles GET /patients/{patientID} requests
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "patientID")

	patient, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPatientNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get patient", "error", err, "id", id)
		http.Error(w, "failed to get patient", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}
