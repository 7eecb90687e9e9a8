package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beefmusic/api/auth"
	"github.com/beefmusic/api/models"
	"github.com/beefmusic/api/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(db, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.TokenResponse)
	}{
		{
			name:           "valid registration",
			requestBody:    models.RegisterRequest{Username: "ana", Password: "secreta1"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.TokenResponse) {
				if resp.Token == "" {
					t.Error("Expected a token")
				}
				if resp.Username != "ana" {
					t.Errorf("Expected username ana, got %q", resp.Username)
				}

				claims, err := auth.ParseToken(cfg.JWTSecret, resp.Token)
				if err != nil {
					t.Fatalf("Token should validate: %v", err)
				}
				if claims.Role != auth.RoleUser {
					t.Errorf("Expected user role, got %q", claims.Role)
				}

				var exists bool
				err = db.QueryRow(`
					SELECT EXISTS(SELECT 1 FROM app_user WHERE username = $1)
				`, "ana").Scan(&exists)
				if err != nil {
					t.Fatalf("Failed to check user: %v", err)
				}
				if !exists {
					t.Error("User was not created in database")
				}
			},
		},
		{
			name:           "missing username",
			requestBody:    models.RegisterRequest{Password: "secreta1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			requestBody:    models.RegisterRequest{Username: "bea", Password: "12345"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate username",
			requestBody:    models.RegisterRequest{Username: "ana", Password: "otraclave"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/register", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.TokenResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(db, cfg)

	// CreateTestUser stores the hash of "password123"
	testutil.CreateTestUser(t, db, "ana")

	t.Run("valid login", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/login-user",
			models.LoginRequest{Username: "ana", Password: "password123"}, nil)
		w := httptest.NewRecorder()

		handler.LoginUser(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.TokenResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != "Login correcto" {
			t.Errorf("Unexpected message: %q", resp.Message)
		}
		if resp.Token == "" {
			t.Error("Expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/login-user",
			models.LoginRequest{Username: "ana", Password: "wrong"}, nil)
		w := httptest.NewRecorder()

		handler.LoginUser(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/login-user",
			models.LoginRequest{Username: "nadie", Password: "password123"}, nil)
		w := httptest.NewRecorder()

		handler.LoginUser(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestLoginAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAuthHandler(db, cfg)

	t.Run("valid credentials", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/login",
			models.LoginRequest{Username: cfg.AdminUser, Password: cfg.AdminPass}, nil)
		w := httptest.NewRecorder()

		handler.LoginAdmin(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.TokenResponse
		testutil.AssertJSON(t, w, &resp)

		claims, err := auth.ParseToken(cfg.JWTSecret, resp.Token)
		if err != nil {
			t.Fatalf("Token should validate: %v", err)
		}
		if claims.Role != auth.RoleAdmin {
			t.Errorf("Expected admin role, got %q", claims.Role)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/login",
			models.LoginRequest{Username: cfg.AdminUser, Password: "wrong"}, nil)
		w := httptest.NewRecorder()

		handler.LoginAdmin(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}
