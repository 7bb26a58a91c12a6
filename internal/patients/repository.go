package patients

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthfirst/portal-api/internal/registration"
)

// Repository defines the interface for patient storage. It doubles as the
// registered-identity directory the submission pipeline checks duplicates
// against.
type Repository interface {
	registration.PatientDirectory

	Create(ctx context.Context, rec registration.PatientRecord) (*Patient, error)
	GetByID(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
}

// InMemoryRepository is an in-memory implementation of Repository.
type InMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]*Patient
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		patients: make(map[string]*Patient),
	}
}

// Create stores an accepted registration record.
func (r *InMemoryRepository) Create(ctx context.Context, rec registration.PatientRecord) (*Patient, error) {
	patient := &Patient{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now().UTC(),
		PatientRecord: rec,
	}

	r.mu.Lock()
	r.patients[patient.ID] = patient
	r.mu.Unlock()

	return patient, nil
}

// GetByID retrieves a patient by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}

	return patient, nil
}

// List returns every stored patient.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, nil
}

// EmailExists reports whether any stored patient already uses the email.
func (r *InMemoryRepository) EmailExists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patients {
		if p.Email == email {
			return true
		}
	}
	return false
}

// PhoneExists reports whether any stored patient already uses the phone.
func (r *InMemoryRepository) PhoneExists(phone string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patients {
		if p.Phone == phone {
			return true
		}
	}
	return false
}
