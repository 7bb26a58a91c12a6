package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthfirst/portal-api/internal/registration"
)

func newTestService() *Service {
	return NewService("test-secret", 30*time.Minute, 0)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login(context.Background(), PortalPatient, "patient@example.com", "Password123")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, int64(1800), session.ExpiresIn)

	claims, err := svc.ParseToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "patient", claims.Portal)
	assert.Equal(t, "patient@example.com", claims.Subject)
}

func TestLoginPortalAccounts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// The provider account does not exist on the patient portal.
	_, err := svc.Login(ctx, PortalPatient, "provider@example.com", "Password123")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.Login(ctx, PortalProvider, "provider@example.com", "Password123")
	assert.NoError(t, err)
}

func TestLoginOutcomes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name       string
		credential string
		password   string
		want       error
	}{
		{"unknown account", "nobody@example.com", "Password123", ErrAccountNotFound},
		{"locked account", "locked@example.com", "Password123", ErrAccountLocked},
		{"wrong password", "patient@example.com", "Password124", ErrWrongPassword},
		{"forced network error", "network@error.com", "Password123", ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, PortalPatient, tt.credential, tt.password)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginCredentialValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name       string
		credential string
		password   string
		field      string
		message    string
	}{
		{"missing credential", "", "Password123", "credential", "Email or phone number is required"},
		{"malformed credential", "not-an-email", "Password123", "credential", "Enter a valid email or phone number"},
		{"phone too short", "+123", "Password123", "credential", "Enter a valid email or phone number"},
		{"missing password", "patient@example.com", "", "password", "Password is required"},
		{"short password", "patient@example.com", "12345", "password", "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, PortalPatient, tt.credential, tt.password)
			require.Error(t, err)

			var errs registration.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.message, errs.Get(tt.field))
		})
	}
}

func TestLoginPhoneCredentialAccepted(t *testing.T) {
	svc := newTestService()

	// A well-formed phone credential passes validation and reaches the
	// account lookup.
	_, err := svc.Login(context.Background(), PortalPatient, "+12345678901", "Password123")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLoginProviderPasswordFloor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Login(ctx, PortalProvider, "provider@example.com", "1234567")
	var errs registration.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Password must be at least 8 characters", errs.Get("password"))

	// Seven characters is fine on the patient portal.
	_, err = svc.Login(ctx, PortalPatient, "patient@example.com", "1234567")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUnknownPortal(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), Portal("admin"), "patient@example.com", "Password123")
	assert.ErrorIs(t, err, ErrUnknownPortal)
}

func TestLoginSingleInFlightAttempt(t *testing.T) {
	svc := NewService("test-secret", 30*time.Minute, 100*time.Millisecond)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Login(ctx, PortalPatient, "patient@example.com", "Password123")
		assert.NoError(t, err)
	}()

	time.Sleep(20 * time.Millisecond)
	_, err := svc.Login(ctx, PortalPatient, "patient@example.com", "Password123")
	assert.ErrorIs(t, err, ErrLoginInFlight)

	// The other portal is not blocked.
	_, err = svc.Login(ctx, PortalProvider, "provider@example.com", "Password123")
	assert.NoError(t, err)

	wg.Wait()

	// The slot frees up once the attempt settles.
	_, err = svc.Login(ctx, PortalPatient, "patient@example.com", "Password123")
	assert.NoError(t, err)
}

func TestLoginContextCancelledDuringDelay(t *testing.T) {
	svc := NewService("test-secret", 30*time.Minute, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Login(ctx, PortalPatient, "patient@example.com", "Password123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewService("other-secret", 30*time.Minute, 0)

	session, err := svc.Login(context.Background(), PortalPatient, "patient@example.com", "Password123")
	require.NoError(t, err)

	_, err = other.ParseToken(session.AccessToken)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	session, err := svc.Login(context.Background(), PortalPatient, "patient@example.com", "Password123")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseToken(session.AccessToken)
	assert.Error(t, err)
}
