package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if !IsAdminFromContext(r.Context()) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	inner, called := okHandler()
	h := RequireAdmin("secret-token")(inner)

	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Error("inner handler should not be called without a token")
	}
}

func TestRequireAdmin_WrongToken(t *testing.T) {
	inner, called := okHandler()
	h := RequireAdmin("secret-token")(inner)

	req := httptest.NewRequest("GET", "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Error("inner handler should not be called with a wrong token")
	}
}

func TestRequireAdmin_ValidToken_SetsContextFlag(t *testing.T) {
	inner, called := okHandler()
	h := RequireAdmin("secret-token")(inner)

	req := httptest.NewRequest("GET", "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !*called {
		t.Error("inner handler should be called with a valid token")
	}
}

func TestBearerToken_Malformed(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := BearerToken(req); got != "" {
		t.Errorf("expected empty token for non-Bearer header, got %q", got)
	}
}

func TestDevAuth_SetsAdminFlag(t *testing.T) {
	inner, _ := okHandler()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	DevAuth(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected admin flag in context, got status %d", rec.Code)
	}
}
