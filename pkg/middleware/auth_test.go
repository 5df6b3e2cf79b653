package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damassweet/damas/pkg/auth"
	"github.com/damassweet/damas/pkg/middleware"
)

func protected(t *testing.T) (http.Handler, *int, *string) {
	t.Helper()

	var gotID int
	var gotRole string
	h := middleware.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.UserIDFromCtx(r.Context())
		if !ok {
			t.Error("claims missing from context")
		}
		role, _ := middleware.RoleFromCtx(r.Context())
		gotID = int(id)
		gotRole = role
		w.WriteHeader(http.StatusOK)
	}))
	return h, &gotID, &gotRole
}

func TestAuthFromCookie(t *testing.T) {
	token, err := auth.GenerateToken(7, "admin", "Amina", "amina@damas.dz")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h, gotID, gotRole := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *gotID != 7 || *gotRole != "admin" {
		t.Errorf("claims = id %d role %q", *gotID, *gotRole)
	}
}

func TestAuthFromBearerHeader(t *testing.T) {
	token, err := auth.GenerateToken(3, "livreur", "Ali", "ali@damas.dz")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h, gotID, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *gotID != 3 {
		t.Errorf("user id = %d, want 3", *gotID)
	}
}

func TestAuthMissingToken(t *testing.T) {
	h, _, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthBadToken(t *testing.T) {
	h, _, _ := protected(t)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
