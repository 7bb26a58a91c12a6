// Package registration implements the validation and submission pipeline
// shared by the patient and provider sign-up flows. It owns no storage and no
// transport: callers supply the existing-identity directory and a register
// callback, and get back field-scoped errors or nothing.
package registration

import (
	"fmt"
	"strings"
)

// State tracks where a form is in its lifecycle. Rejected submissions return
// to Editing with field errors attached; Accepted terminates the instance.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateRejected
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateAccepted:
		return "accepted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// FieldError scopes a message to a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the full set of field errors from one validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Get returns the message attached to a field, or "".
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Has reports whether any error is attached to the field.
func (e Errors) Has(field string) bool {
	return e.Get(field) != ""
}

// DuplicateError is a uniqueness conflict found at submission time. It is
// field-scoped like any validation error but detected against the caller's
// directory, so shells usually surface it with a conflict status.
type DuplicateError struct {
	FieldError
}

func duplicate(field, message string) *DuplicateError {
	return &DuplicateError{FieldError{Field: field, Message: message}}
}
