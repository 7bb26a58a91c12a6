package registration

import (
	"time"

	"github.com/healthfirst/portal-api/internal/validate"
)

// Static option lists presented by the patient form. Only the language list
// carries any behavior elsewhere (it is the extent of internationalization).
var (
	CommonMedicalConditions = []string{
		"Hypertension", "Diabetes Type 1", "Diabetes Type 2", "Asthma", "Arthritis",
		"Heart Disease", "High Cholesterol", "Thyroid Disorder", "Depression",
		"Anxiety", "Migraine", "Osteoporosis", "Cancer", "COPD", "Kidney Disease",
	}
	CommonAllergies = []string{
		"Penicillin", "Peanuts", "Shellfish", "Eggs", "Milk", "Soy", "Wheat",
		"Tree Nuts", "Fish", "Latex", "Dust Mites", "Pollen", "Pet Dander",
	}
	CommonMedications = []string{
		"Aspirin", "Ibuprofen", "Acetaminophen", "Lisinopril", "Metformin",
		"Simvastatin", "Omeprazole", "Levothyroxine", "Amlodipine", "Metoprolol",
	}
	Languages = []string{
		"English", "Spanish", "French", "German", "Italian", "Portuguese",
		"Chinese (Mandarin)", "Chinese (Cantonese)", "Japanese", "Korean",
		"Arabic", "Hindi", "Russian",
	}
)

// EmergencyContact is a toggle-gated optional group anchored on Name.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Insurance is a toggle-gated optional group anchored on Provider.
type Insurance struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policy_number"`
	GroupNumber  string `json:"group_number"`
}

// Preferences is toggle-gated with no anchor field: enabling the toggle is
// enough to include it.
type Preferences struct {
	CommunicationMethod  string `json:"communication_method"`
	AppointmentReminders bool   `json:"appointment_reminders"`
	HealthTips           bool   `json:"health_tips"`
}

// PatientInput is the raw field-value bag for one open patient form.
type PatientInput struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Password          string
	ConfirmPassword   string
	DateOfBirth       time.Time
	Gender            string
	Street            string
	City              string
	State             string
	Zip               string
	MaritalStatus     string
	Occupation        string
	PreferredLanguage string
	EmergencyContact  EmergencyContact
	Insurance         Insurance
	Preferences       Preferences
}

// PatientRecord is the normalized output handed to the register callback.
// Credential fields never appear; optional groups appear only when gated in.
type PatientRecord struct {
	FirstName          string            `json:"first_name"`
	LastName           string            `json:"last_name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	DateOfBirth        time.Time         `json:"date_of_birth"`
	Gender             string            `json:"gender"`
	Street             string            `json:"street"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Zip                string            `json:"zip"`
	MaritalStatus      string            `json:"marital_status"`
	Occupation         string            `json:"occupation,omitempty"`
	PreferredLanguage  string            `json:"preferred_language"`
	MedicalHistory     []string          `json:"medical_history,omitempty"`
	Allergies          []string          `json:"allergies,omitempty"`
	CurrentMedications []string          `json:"current_medications,omitempty"`
	EmergencyContact   *EmergencyContact `json:"emergency_contact,omitempty"`
	Insurance          *Insurance        `json:"insurance,omitempty"`
	Preferences        *Preferences      `json:"preferences,omitempty"`
}

// PatientDirectory is the externally owned set of already-registered patient
// identities. The form only reads from it.
type PatientDirectory interface {
	EmailExists(email string) bool
	PhoneExists(phone string) bool
}

// PatientForm drives one patient registration dialog: the field bag, the tag
// lists, the section toggles, and the derived validation state.
type PatientForm struct {
	input PatientInput

	Conditions  TagList
	Allergies   TagList
	Medications TagList

	IncludeEmergencyContact bool
	IncludeInsurance        bool
	IncludePreferences      bool

	state    State
	errors   Errors
	strength int

	now func() time.Time
}

// NewPatientForm returns a form with the dialog's default selections.
func NewPatientForm() *PatientForm {
	f := &PatientForm{now: time.Now}
	f.input = defaultPatientInput()
	f.recompute()
	return f
}

func defaultPatientInput() PatientInput {
	return PatientInput{
		Gender:            "prefer_not_to_say",
		MaritalStatus:     "single",
		PreferredLanguage: "English",
		Preferences: Preferences{
			CommunicationMethod:  "email",
			AppointmentReminders: true,
			HealthTips:           false,
		},
	}
}

// Input returns a snapshot of the current field values.
func (f *PatientForm) Input() PatientInput { return f.input }

// State returns the form's lifecycle state.
func (f *PatientForm) State() State { return f.state }

// Errors returns the field errors from the latest validation pass.
func (f *PatientForm) Errors() Errors { return f.errors }

// Strength returns the advisory password strength score.
func (f *PatientForm) Strength() int { return f.strength }

// StrengthLabel returns the advisory band for the current score.
func (f *PatientForm) StrengthLabel() string { return validate.StrengthLabel(f.strength) }

// Valid reports whether the latest pass found no field errors.
func (f *PatientForm) Valid() bool { return len(f.errors) == 0 }

// Apply mutates the field bag and re-derives errors and strength from the new
// snapshot, giving validate-on-change semantics without an observer graph.
// Editing after a rejected submission returns the form to the editing state.
func (f *PatientForm) Apply(mut func(*PatientInput)) {
	f.state = StateEditing
	mut(&f.input)
	f.recompute()
}

// SetPhone stores the display-formatted phone, mirroring the per-keystroke
// transform.
func (f *PatientForm) SetPhone(v string) {
	f.Apply(func(in *PatientInput) { in.Phone = validate.FormatPhone(v) })
}

// SetZip stores the display-formatted ZIP.
func (f *PatientForm) SetZip(v string) {
	f.Apply(func(in *PatientInput) { in.Zip = validate.FormatZip(v) })
}

func (f *PatientForm) recompute() {
	f.errors = ValidatePatient(f.input, f.now())
	f.strength = validate.Strength(f.input.Password)
}

// ValidatePatient runs every patient field rule against a snapshot. Field
// names in the returned errors use the wire names of the registration request.
func ValidatePatient(in PatientInput, now time.Time) Errors {
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
	check("date_of_birth", validate.DateOfBirth(in.DateOfBirth, now))
	check("street", validate.RequiredMax("Street address", in.Street, 200))
	check("city", validate.RequiredMax("City", in.City, 100))
	check("state", validate.RequiredMax("State", in.State, 50))
	check("zip", validate.ZipUS(in.Zip))
	check("occupation", validate.Max("Occupation", in.Occupation, 100))
	check("emergency_contact.name", validate.Max("Emergency contact name", in.EmergencyContact.Name, 100))
	check("emergency_contact.phone", validate.OptionalPhone(in.EmergencyContact.Phone))
	check("emergency_contact.relationship", validate.Max("Relationship", in.EmergencyContact.Relationship, 50))
	return errs
}

// Submit runs the full pipeline: field rules, duplicate-identity checks
// against dir, normalization, and exactly one register call on success. On
// success all ephemeral state resets; on failure nothing is mutated besides
// the attached errors and the callback is never invoked.
func (f *PatientForm) Submit(dir PatientDirectory, register func(PatientRecord)) error {
	f.state = StateValidating
	f.errors = ValidatePatient(f.input, f.now())
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
			dup := duplicate("phone", "Phone number already exists")
			f.errors = Errors{dup.FieldError}
			f.reject()
			return dup
		}
	}

	record := f.normalize()
	if register != nil {
		register(record)
	}
	f.Reset()
	f.state = StateAccepted
	return nil
}

// normalize assembles the output record: credentials stripped, tag lists
// copied, optional groups gated on toggle plus anchor field.
func (f *PatientForm) normalize() PatientRecord {
	in := f.input
	rec := PatientRecord{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Email:              in.Email,
		Phone:              in.Phone,
		DateOfBirth:        in.DateOfBirth,
		Gender:             in.Gender,
		Street:             in.Street,
		City:               in.City,
		State:              in.State,
		Zip:                in.Zip,
		MaritalStatus:      in.MaritalStatus,
		Occupation:         in.Occupation,
		PreferredLanguage:  in.PreferredLanguage,
		MedicalHistory:     f.Conditions.Items(),
		Allergies:          f.Allergies.Items(),
		CurrentMedications: f.Medications.Items(),
	}
	if f.IncludeEmergencyContact && in.EmergencyContact.Name != "" {
		ec := in.EmergencyContact
		rec.EmergencyContact = &ec
	}
	if f.IncludeInsurance && in.Insurance.Provider != "" {
		ins := in.Insurance
		rec.Insurance = &ins
	}
	if f.IncludePreferences {
		prefs := in.Preferences
		rec.Preferences = &prefs
	}
	return rec
}

// Reset returns every ephemeral piece of form state to its initial empty
// configuration, as happens after a successful registration or a dialog close.
func (f *PatientForm) Reset() {
	f.input = defaultPatientInput()
	f.Conditions.Reset()
	f.Allergies.Reset()
	f.Medications.Reset()
	f.IncludeEmergencyContact = false
	f.IncludeInsurance = false
	f.IncludePreferences = false
	f.state = StateEditing
	f.recompute()
}

func (f *PatientForm) reject() {
	f.state = StateRejected
}
