package patients

import (
	"time"

	"github.com/healthfirst/portal-api/internal/registration"
)

// Patient is a stored, accepted patient registration.
type Patient struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	registration.PatientRecord
}

// RegisterPatientRequest is the request body for patient registration. It
// mirrors the sign-up dialog: raw field values, the section toggles, and the
// selected tag lists. date_of_birth uses the date-only wire form.
type RegisterPatientRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Password          string `json:"password"`
	ConfirmPassword   string `json:"confirm_password"`
	DateOfBirth       string `json:"date_of_birth"`
	Gender            string `json:"gender,omitempty"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	Zip               string `json:"zip"`
	MaritalStatus     string `json:"marital_status,omitempty"`
	Occupation        string `json:"occupation,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`

	MedicalHistory     []string `json:"medical_history,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	CurrentMedications []string `json:"current_medications,omitempty"`

	IncludeEmergencyContact bool                          `json:"include_emergency_contact"`
	EmergencyContact        registration.EmergencyContact `json:"emergency_contact"`
	IncludeInsurance        bool                          `json:"include_insurance"`
	Insurance               registration.Insurance        `json:"insurance"`
	IncludePreferences      bool                          `json:"include_preferences"`
	Preferences             registration.Preferences      `json:"preferences"`
}

// toForm loads the request into a fresh form. Omitted selections keep the
// form's defaults; an unparsable date_of_birth stays zero and fails the date
// rule downstream.
func (r *RegisterPatientRequest) toForm() *registration.PatientForm {
	f := registration.NewPatientForm()
	f.Apply(func(in *registration.PatientInput) {
		in.FirstName = r.FirstName
		in.LastName = r.LastName
		in.Email = r.Email
		in.Phone = r.Phone
		in.Password = r.Password
		in.ConfirmPassword = r.ConfirmPassword
		if dob, err := time.Parse("2006-01-02", r.DateOfBirth); err == nil {
			in.DateOfBirth = dob
		}
		if r.Gender != "" {
			in.Gender = r.Gender
		}
		in.Street = r.Street
		in.City = r.City
		in.State = r.State
		in.Zip = r.Zip
		if r.MaritalStatus != "" {
			in.MaritalStatus = r.MaritalStatus
		}
		in.Occupation = r.Occupation
		if r.PreferredLanguage != "" {
			in.PreferredLanguage = r.PreferredLanguage
		}
		in.EmergencyContact = r.EmergencyContact
		in.Insurance = r.Insurance
		if r.IncludePreferences {
			in.Preferences = r.Preferences
		}
	})

	for _, tag := range r.MedicalHistory {
		f.Conditions.Add(tag)
	}
	for _, tag := range r.Allergies {
		f.Allergies.Add(tag)
	}
	for _, tag := range r.CurrentMedications {
		f.Medications.Add(tag)
	}

	f.IncludeEmergencyContact = r.IncludeEmergencyContact
	f.IncludeInsurance = r.IncludeInsurance
	f.IncludePreferences = r.IncludePreferences
	return f
}
