// Package validate holds the field-level rules shared by the patient and
// provider registration forms. Every rule is a pure function of the current
// field value so forms can re-evaluate on each change.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^\+?[\d\s()\-]+$`)
	zipUSRe      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	postalCodeRe = regexp.MustCompile(`^[a-zA-Z0-9\-\s]{3,12}$`)
	licenseRe    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitRe      = regexp.MustCompile(`\d`)
)

// Password character classes. The qualifying symbol set is fixed; other
// symbols still count toward strength but not toward the pattern rule.
var (
	lowerRe  = regexp.MustCompile(`[a-z]`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	numberRe = regexp.MustCompile(`\d`)
	symbolRe = regexp.MustCompile(`[@$!%*?&]`)
)

// Name validates a person-name field (first name, last name). The label is
// used verbatim in messages, e.g. "First name is required".
func Name(label, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", label)
	}
	if len(v) < 2 {
		return fmt.Errorf("%s must be at least 2 characters", label)
	}
	if len(v) > 50 {
		return fmt.Errorf("%s must not exceed 50 characters", label)
	}
	if !nameRe.MatchString(v) {
		return fmt.Errorf("%s can only contain letters, spaces, hyphens, and apostrophes", label)
	}
	return nil
}

// Email validates the local@domain.tld shape with no whitespace around the @.
func Email(v string) error {
	if v == "" {
		return fmt.Errorf("Email is required")
	}
	if !emailRe.MatchString(v) {
		return fmt.Errorf("Please enter a valid email address")
	}
	return nil
}

// Phone accepts digits, spaces, parentheses, hyphens and a leading plus, and
// requires at least 10 digits overall.
func Phone(v string) error {
	if v == "" {
		return fmt.Errorf("Phone number is required")
	}
	if !phoneRe.MatchString(v) {
		return fmt.Errorf("Please enter a valid phone number")
	}
	if len(digitRe.FindAllString(v, -1)) < 10 {
		return fmt.Errorf("Phone number is too short")
	}
	return nil
}

// OptionalPhone applies the phone rule only when a value is present.
// Emergency-contact phones use it.
func OptionalPhone(v string) error {
	if v == "" {
		return nil
	}
	return Phone(v)
}

// Password enforces the submission-blocking pattern rule: minimum length and
// one of each character class.
func Password(v string) error {
	if v == "" {
		return fmt.Errorf("Password is required")
	}
	if len(v) < 8 {
		return fmt.Errorf("Password must be at least 8 characters")
	}
	if !lowerRe.MatchString(v) || !upperRe.MatchString(v) || !numberRe.MatchString(v) ||
		!symbolRe.MatchString(v) {
		return fmt.Errorf("Password must contain uppercase, lowercase, number, and special character")
	}
	return nil
}

// ConfirmPassword is the one cross-field rule: it reads the sibling password.
func ConfirmPassword(password, confirm string) error {
	if confirm == "" {
		return fmt.Errorf("Please confirm your password")
	}
	if confirm != password {
		return fmt.Errorf("Passwords do not match")
	}
	return nil
}

// DateOfBirth rejects future dates and ages under 13 years. The comparison is
// month- and day-aware so a birth date exactly 13 years before now passes and
// one day later fails.
func DateOfBirth(dob, now time.Time) error {
	if dob.IsZero() {
		return fmt.Errorf("Date of birth is required")
	}
	if dob.After(now) {
		return fmt.Errorf("Date of birth cannot be in the future")
	}
	if AgeAt(dob, now) < 13 {
		return fmt.Errorf("Must be at least 13 years old")
	}
	return nil
}

// AgeAt computes full years elapsed between dob and now.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// ZipUS validates the patient portal's 5 or 5+4 digit ZIP format.
func ZipUS(v string) error {
	if v == "" {
		return fmt.Errorf("ZIP code is required")
	}
	if !zipUSRe.MatchString(v) {
		return fmt.Errorf("Please enter a valid ZIP code (12345 or 12345-6789)")
	}
	return nil
}

// PostalCode validates the provider portal's looser ZIP/postal format.
func PostalCode(v string) error {
	if v == "" {
		return fmt.Errorf("ZIP/postal code is required")
	}
	if !postalCodeRe.MatchString(v) {
		return fmt.Errorf("Please enter a valid ZIP/postal code")
	}
	return nil
}

// License validates a medical license number.
func License(v string) error {
	if v == "" {
		return fmt.Errorf("License number is required")
	}
	if !licenseRe.MatchString(v) {
		return fmt.Errorf("License number must be alphanumeric")
	}
	return nil
}

// Experience validates the years-of-experience field, which arrives as the
// raw text of a number input.
func Experience(v string) error {
	if v == "" {
		return fmt.Errorf("Years of experience is required")
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("Years of experience must be a number")
	}
	if n < 0 || n > 50 {
		return fmt.Errorf("Years of experience must be between 0 and 50")
	}
	return nil
}

// Specialization is required with a 3-100 character range.
func Specialization(v string) error {
	if v == "" {
		return fmt.Errorf("Specialization is required")
	}
	if len(v) < 3 {
		return fmt.Errorf("Specialization must be at least 3 characters")
	}
	if len(v) > 100 {
		return fmt.Errorf("Specialization must not exceed 100 characters")
	}
	return nil
}

// RequiredMax validates a required free-text field with a maximum length,
// e.g. street, city, state.
func RequiredMax(label string, v string, max int) error {
	if v == "" {
		return fmt.Errorf("%s is required", label)
	}
	return Max(label, v, max)
}

// Max validates only the maximum length of an optional field.
func Max(label string, v string, max int) error {
	if len(v) > max {
		return fmt.Errorf("%s must not exceed %d characters", label, max)
	}
	return nil
}
