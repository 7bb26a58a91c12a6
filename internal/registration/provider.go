package registration

import (
	"github.com/healthfirst/portal-api/internal/validate"
)

// ProviderStatus is the provider table's status column.
type ProviderStatus string

const (
	StatusActive   ProviderStatus = "active"
	StatusInactive ProviderStatus = "inactive"
	StatusOnLeave  ProviderStatus = "on leave"
)

// Valid reports whether the status is one of the three selectable values.
func (s ProviderStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}

// ProviderInput is the raw field-value bag for one open provider form.
// Experience carries the raw text of the number input.
type ProviderInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Specialization  string
	License         string
	Experience      string
	Street          string
	City            string
	State           string
	Zip             string
	Status          ProviderStatus
}

// ProviderRecord is the normalized output for the provider variant.
type ProviderRecord struct {
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Specialization string         `json:"specialization"`
	License        string         `json:"license"`
	Experience     string         `json:"experience"`
	Street         string         `json:"street"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Zip            string         `json:"zip"`
	Status         ProviderStatus `json:"status"`
}

// ProviderDirectory adds license uniqueness to the identity checks.
type ProviderDirectory interface {
	EmailExists(email string) bool
	PhoneExists(phone string) bool
	LicenseExists(license string) bool
}

// ProviderForm drives one provider registration dialog.
type ProviderForm struct {
	input  ProviderInput
	state  State
	errors Errors
}

// NewProviderForm returns a form with the dialog's default selections.
func NewProviderForm() *ProviderForm {
	f := &ProviderForm{input: ProviderInput{Status: StatusActive}}
	f.recompute()
	return f
}

// Input returns a snapshot of the current field values.
func (f *ProviderForm) Input() ProviderInput { return f.input }

// State returns the form's lifecycle state.
func (f *ProviderForm) State() State { return f.state }

// Errors returns the field errors from the latest validation pass.
func (f *ProviderForm) Errors() Errors { return f.errors }

// Valid reports whether the latest pass found no field errors.
func (f *ProviderForm) Valid() bool { return len(f.errors) == 0 }

// Apply mutates the field bag and revalidates the new snapshot.
func (f *ProviderForm) Apply(mut func(*ProviderInput)) {
	f.state = StateEditing
	mut(&f.input)
	f.recompute()
}

func (f *ProviderForm) recompute() {
	f.errors = ValidateProvider(f.input)
}

// ValidateProvider runs every provider field rule against a snapshot.
func ValidateProvider(in ProviderInput) Errors {
	var errs Errors
	check := func(field string, err error) {
		if err != nil {
			errs = append(errs, FieldError{Field: field, Message: err.Error()})
		}
	}

	check("first_name", validate.Name("First name", in.FirstName))
	check("last_name", validate.Name("Last name", in.LastName))
	check("email", validate.Email(in.Email))
	check("phone", validate.Phone(in.Phone))
	check("password", validate.Password(in.Password))
	check("confirm_password", validate.ConfirmPassword(in.Password, in.ConfirmPassword))
	check("specialization", validate.Specialization(in.Specialization))
	check("license", validate.License(in.License))
	check("experience", validate.Experience(in.Experience))
	check("street", validate.RequiredMax("Street address", in.Street, 200))
	check("city", validate.RequiredMax("City", in.City, 100))
	check("state", validate.RequiredMax("State", in.State, 50))
	check("zip", validate.PostalCode(in.Zip))
	if !in.Status.Valid() {
		errs = append(errs, FieldError{Field: "status", Message: "Status is required"})
	}
	return errs
}

// Submit mirrors the patient pipeline with the additional license uniqueness
// check. Duplicate checks run in order email, phone, license; the first hit
// aborts with no other state change.
func (f *ProviderForm) Submit(dir ProviderDirectory, register func(ProviderRecord)) error {
	f.state = StateValidating
	f.errors = ValidateProvider(f.input)
	if len(f.errors) > 0 {
		f.reject()
		return f.errors
	}

	if dir != nil {
		if dir.EmailExists(f.input.Email) {
			dup := duplicate("email", "Email already exists")
			f.errors = Errors{dup.FieldError}
			f.reject()
			return dup
		}
		if dir.PhoneExists(f.input.Phone) {
			dup := duplicate("phone", "Phone already exists")
			f.errors = Errors{dup.FieldError}
			f.reject()
			return dup
		}
		if dir.LicenseExists(f.input.License) {
			dup := duplicate("license", "License already exists")
			f.errors = Errors{dup.FieldError}
			f.reject()
			return dup
		}
	}

	in := f.input
	record := ProviderRecord{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Specialization: in.Specialization,
		License:        in.License,
		Experience:     in.Experience,
		Street:         in.Street,
		City:           in.City,
		State:          in.State,
		Zip:            in.Zip,
		Status:         in.Status,
	}
	if register != nil {
		register(record)
	}
	f.Reset()
	f.state = StateAccepted
	return nil
}

// Reset returns the form to its initial configuration.
func (f *ProviderForm) Reset() {
	f.input = ProviderInput{Status: StatusActive}
	f.state = StateEditing
	f.recompute()
}

func (f *ProviderForm) reject() {
	f.state = StateRejected
}
