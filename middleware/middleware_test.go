package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"

	"github.com/beefmusic/api/auth"
)

const testSecret = "test-secret"

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequireUser(t *testing.T) {
	userToken, _ := auth.NewUserToken(testSecret, "user-1", "ana")
	adminToken, _ := auth.NewAdminToken(testSecret)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed header", userToken, http.StatusUnauthorized},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized},
		{"admin token on user endpoint", "Bearer " + adminToken, http.StatusForbidden},
		{"valid user token", "Bearer " + userToken, http.StatusOK},
	}

	handler := RequireUser(testSecret, okHandler)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/sound-profile", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestRequireUserInjectsIdentity(t *testing.T) {
	token, _ := auth.NewUserToken(testSecret, "user-1", "ana")

	var got Identity
	handler := RequireUser(testSecret, func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFrom(r.Context())
		if !ok {
			t.Fatal("Identity missing from context")
		}
		got = ident
	})

	req := httptest.NewRequest("GET", "/api/sound-profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler(httptest.NewRecorder(), req)

	if got.UserID != "user-1" || got.Username != "ana" || got.Role != auth.RoleUser {
		t.Errorf("Unexpected identity: %+v", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	userToken, _ := auth.NewUserToken(testSecret, "user-1", "ana")
	adminToken, _ := auth.NewAdminToken(testSecret)

	handler := RequireAdmin(testSecret, okHandler)

	req := httptest.NewRequest("GET", "/api/peticiones", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("User token on admin endpoint: expected 403, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/peticiones", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Admin token: expected 200, got %d", w.Code)
	}
}

func TestOptionalIdentity(t *testing.T) {
	userToken, _ := auth.NewUserToken(testSecret, "user-1", "ana")
	adminToken, _ := auth.NewAdminToken(testSecret)

	req := httptest.NewRequest("GET", "/api/canciones", nil)
	if ident := OptionalIdentity(req, testSecret); ident != nil {
		t.Errorf("Anonymous request should resolve nil, got %+v", ident)
	}

	req.Header.Set("Authorization", "Bearer garbage")
	if ident := OptionalIdentity(req, testSecret); ident != nil {
		t.Errorf("Invalid token should resolve nil, got %+v", ident)
	}

	// Admin tokens never personalize public endpoints
	req.Header.Set("Authorization", "Bearer "+adminToken)
	if ident := OptionalIdentity(req, testSecret); ident != nil {
		t.Errorf("Admin token should resolve nil, got %+v", ident)
	}

	req.Header.Set("Authorization", "Bearer "+userToken)
	ident := OptionalIdentity(req, testSecret)
	if ident == nil || ident.UserID != "user-1" {
		t.Errorf("Expected user-1 identity, got %+v", ident)
	}
}

func TestRateLimiter(t *testing.T) {
	// Tiny refill rate so the burst is all the test sees
	rl := NewRateLimiter(rate.Limit(0.001), 3)
	handler := rl.Wrap(okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/login-user", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d within burst: expected 200, got %d", i+1, w.Code)
		}
	}

	req := httptest.NewRequest("POST", "/api/login-user", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Over burst: expected 429, got %d", w.Code)
	}

	// A different client IP has its own bucket
	req = httptest.NewRequest("POST", "/api/login-user", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Fresh IP: expected 200, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the wrapped handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/canciones", nil)
	req.Header.Set("Origin", "https://beefmusic.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://beefmusic.example" {
		t.Errorf("Unexpected allow-origin: %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("Expected allow-methods header")
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	if ip := GetClientIP(req); ip != "192.168.1.5" {
		t.Errorf("Expected RemoteAddr IP, got %q", ip)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if ip := GetClientIP(req); ip != "203.0.113.9" {
		t.Errorf("Expected X-Real-IP, got %q", ip)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if ip := GetClientIP(req); ip != "198.51.100.7" {
		t.Errorf("Expected first X-Forwarded-For hop, got %q", ip)
	}
}
