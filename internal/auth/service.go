// Package auth implements the simulated portal login flow: a fixed account
// list per portal, a fixed network delay, and HMAC-signed access tokens for
// the guarded endpoints.
package auth

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/healthfirst/portal-api/internal/registration"
)

// Portal selects which account list a login runs against.
type Portal string

const (
	PortalPatient  Portal = "patient"
	PortalProvider Portal = "provider"
)

// Valid reports whether the portal is one of the two known portals.
func (p Portal) Valid() bool {
	return p == PortalPatient || p == PortalProvider
}

// Authentication outcomes. Messages are surfaced verbatim to the caller.
var (
	ErrAccountNotFound = errors.New("Account not found.")
	ErrAccountLocked   = errors.New("Account is locked. Please contact support.")
	ErrWrongPassword   = errors.New("Incorrect password.")
	ErrNetwork         = errors.New("Network/server error. Please try again.")
	ErrLoginInFlight   = errors.New("a login attempt is already in progress")
	ErrUnknownPortal   = errors.New("unknown portal")
)

// networkErrorCredential forces the simulated network failure path.
const networkErrorCredential = "network@error.com"

var (
	credentialEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	credentialPhoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// Account is one entry in a portal's fixed account list.
type Account struct {
	Email    string
	Password string
	Locked   bool
}

// DefaultAccounts returns the built-in account list for a portal. Each portal
// has one active account and one locked account.
func DefaultAccounts(portal Portal) []Account {
	active := "patient@example.com"
	if portal == PortalProvider {
		active = "provider@example.com"
	}
	return []Account{
		{Email: active, Password: "Password123", Locked: false},
		{Email: "locked@example.com", Password: "Password123", Locked: true},
	}
}

// Session is a successful login result.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Service runs login attempts for both portals.
type Service struct {
	accounts map[Portal][]Account
	delay    time.Duration
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time

	mu      sync.Mutex
	pending map[Portal]bool
}

// NewService builds a service with the default account lists. delay is the
// simulated round-trip applied to every attempt.
func NewService(secret string, tokenTTL, delay time.Duration) *Service {
	return &Service{
		accounts: map[Portal][]Account{
			PortalPatient:  DefaultAccounts(PortalPatient),
			PortalProvider: DefaultAccounts(PortalProvider),
		},
		delay:    delay,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		pending:  make(map[Portal]bool),
	}
}

// ValidateCredentials runs the pre-submit field rules for a portal's login
// form. The password length floor differs between portals.
func ValidateCredentials(portal Portal, credential, password string) registration.Errors {
	var errs registration.Errors

	if credential == "" {
		errs = append(errs, registration.FieldError{Field: "credential", Message: "Email or phone number is required"})
	} else if !credentialEmailRe.MatchString(credential) && !credentialPhoneRe.MatchString(credential) {
		errs = append(errs, registration.FieldError{Field: "credential", Message: "Enter a valid email or phone number"})
	}

	minLen := 6
	if portal == PortalProvider {
		minLen = 8
	}
	if password == "" {
		errs = append(errs, registration.FieldError{Field: "password", Message: "Password is required"})
	} else if len(password) < minLen {
		if minLen == 8 {
			errs = append(errs, registration.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
		} else {
			errs = append(errs, registration.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
		}
	}
	return errs
}

// Login runs one attempt against the portal's account list. Each portal
// allows a single in-flight attempt at a time; the fixed delay runs before
// any account lookup, including the forced network failure.
func (s *Service) Login(ctx context.Context, portal Portal, credential, password string) (*Session, error) {
	if !portal.Valid() {
		return nil, ErrUnknownPortal
	}
	if errs := ValidateCredentials(portal, credential, password); len(errs) > 0 {
		return nil, errs
	}

	s.mu.Lock()
	if s.pending[portal] {
		s.mu.Unlock()
		return nil, ErrLoginInFlight
	}
	s.pending[portal] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending[portal] = false
		s.mu.Unlock()
	}()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if credential == networkErrorCredential {
		return nil, ErrNetwork
	}

	var account *Account
	for i := range s.accounts[portal] {
		if s.accounts[portal][i].Email == credential {
			account = &s.accounts[portal][i]
			break
		}
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.Locked {
		return nil, ErrAccountLocked
	}
	if account.Password != password {
		return nil, ErrWrongPassword
	}

	token, err := s.issueToken(portal, account.Email)
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}
