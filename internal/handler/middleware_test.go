package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/arrazka/lifeboard/internal/config"
	"github.com/arrazka/lifeboard/internal/service"
)

const testSecret = "middleware-test-secret"

func newTestAuth() *service.AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: testSecret}
	return service.NewAuthService(nil, logger, cfg)
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := AuthMiddleware(newTestAuth(), logger)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("next handler should not run without a token")
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := AuthMiddleware(newTestAuth(), logger)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer a b"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/accounts", nil)
		req.Header.Set("Authorization", header)
		mw(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := AuthMiddleware(newTestAuth(), logger)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forged, err := token.SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewarePassesUserID(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := AuthMiddleware(newTestAuth(), logger)

	var gotID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := UserIDFromContext(r.Context())
		if err != nil {
			t.Errorf("expected user ID in context: %v", err)
		}
		gotID = id
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/accounts", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signToken(t, "42")))
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotID != 42 {
		t.Errorf("expected user ID 42, got %d", gotID)
	}
}

func TestUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, err := UserIDFromContext(req.Context()); err == nil {
		t.Error("expected error for context without user ID")
	}
}
