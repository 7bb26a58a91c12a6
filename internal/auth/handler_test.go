package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/healthfirst/portal-api/pkg/logging"
)

func newTestRouter() chi.Router {
	svc := NewService("test-secret", 30*time.Minute, 0)
	handler := NewHandler(svc, logging.Default(), nil)

	r := chi.NewRouter()
	r.Post("/auth/{portal}/login", handler.Login)
	return r
}

func postLogin(t *testing.T, r chi.Router, portal string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/auth/"+portal+"/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler_Success(t *testing.T) {
	r := newTestRouter()

	w := postLogin(t, r, "patient", LoginRequest{Credential: "patient@example.com", Password: "Password123"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var session Session
	if err := json.NewDecoder(w.Body).Decode(&session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.AccessToken == "" {
		t.Error("expected an access token")
	}
	if session.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %s", session.TokenType)
	}
	if session.ExpiresIn != 1800 {
		t.Errorf("expected expires_in 1800, got %d", session.ExpiresIn)
	}
}

func TestLoginHandler_AuthFailures(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		credential string
		password   string
		status     int
		message    string
	}{
		{"account not found", "nobody@example.com", "Password123", http.StatusUnauthorized, "Account not found."},
		{"locked account", "locked@example.com", "Password123", http.StatusLocked, "Account is locked. Please contact support."},
		{"wrong password", "patient@example.com", "Password124", http.StatusUnauthorized, "Incorrect password."},
		{"network error", "network@error.com", "Password123", http.StatusBadGateway, "Network/server error. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postLogin(t, r, "patient", LoginRequest{Credential: tt.credential, Password: tt.password})

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}

			var resp authErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, resp.Error)
			}
		})
	}
}

func TestLoginHandler_ValidationErrors(t *testing.T) {
	r := newTestRouter()

	w := postLogin(t, r, "patient", LoginRequest{Credential: "not-an-email", Password: ""})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Errors.Has("credential") {
		t.Error("expected a field error on credential")
	}
	if !resp.Errors.Has("password") {
		t.Error("expected a field error on password")
	}
}

func TestLoginHandler_UnknownPortal(t *testing.T) {
	r := newTestRouter()

	w := postLogin(t, r, "admin", LoginRequest{Credential: "patient@example.com", Password: "Password123"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestLoginHandler_InvalidJSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/patient/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
