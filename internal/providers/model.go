package providers

import (
	"time"

	"github.com/healthfirst/portal-api/internal/registration"
)

// Provider is a stored, accepted provider registration.
type Provider struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	registration.ProviderRecord
}

// RegisterProviderRequest is the request body for provider registration.
// Experience arrives as the raw text of the number input; an omitted status
// keeps the active default.
type RegisterProviderRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Specialization  string `json:"specialization"`
	License         string `json:"license"`
	Experience      string `json:"experience"`
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	Status          string `json:"status,omitempty"`
}

func (r *RegisterProviderRequest) toForm() *registration.ProviderForm {
	f := registration.NewProviderForm()
	f.Apply(func(in *registration.ProviderInput) {
		in.FirstName = r.FirstName
		in.LastName = r.LastName
		in.Email = r.Email
		in.Phone = r.Phone
		in.Password = r.Password
		in.ConfirmPassword = r.ConfirmPassword
		in.Specialization = r.Specialization
		in.License = r.License
		in.Experience = r.Experience
		in.Street = r.Street
		in.City = r.City
		in.State = r.State
		in.Zip = r.Zip
		if r.Status != "" {
			in.Status = registration.ProviderStatus(r.Status)
		}
	})
	return f
}
