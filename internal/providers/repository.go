package providers

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthfirst/portal-api/internal/registration"
)

// Repository defines the interface for provider storage. It doubles as the
// registered-identity directory for the submission pipeline, which for
// providers also covers license numbers.
type Repository interface {
	registration.ProviderDirectory

	Create(ctx context.Context, rec registration.ProviderRecord) (*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context) ([]*Provider, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository is an in-memory implementation of Repository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	providers map[string]*Provider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		providers: make(map[string]*Provider),
	}
}

// Create stores an accepted registration record.
func (r *InMemoryRepository) Create(ctx context.Context, rec registration.ProviderRecord) (*Provider, error) {
	provider := &Provider{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now().UTC(),
		ProviderRecord: rec,
	}

	r.mu.Lock()
	r.providers[provider.ID] = provider
	r.mu.Unlock()

	return provider, nil
}

// GetByID retrieves a provider by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[id]
	if !ok {
		return nil, ErrProviderNotFound
	}

	return provider, nil
}

// List returns every stored provider.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, nil
}

// Delete removes a provider by ID.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[id]; !ok {
		return ErrProviderNotFound
	}
	delete(r.providers, id)
	return nil
}

// EmailExists reports whether any stored provider already uses the email.
func (r *InMemoryRepository) EmailExists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Email == email {
			return true
		}
	}
	return false
}

// PhoneExists reports whether any stored provider already uses the phone.
func (r *InMemoryRepository) PhoneExists(phone string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Phone == phone {
			return true
		}
	}
	return false
}

// LicenseExists reports whether any stored provider already uses the license.
func (r *InMemoryRepository) LicenseExists(license string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.License == license {
			return true
		}
	}
	return false
}
