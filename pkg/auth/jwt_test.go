package auth_test

import (
	"strings"
	"testing"

	"github.com/damassweet/damas/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(7, "livreur", "Ali", "ali@damas.dz")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("user_id = %d, want 7", claims.UserID)
	}
	if claims.Role != "livreur" || claims.Name != "Ali" || claims.Email != "ali@damas.dz" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Error("token must carry an expiry")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := auth.GenerateToken(7, "admin", "Ali", "ali@damas.dz")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := auth.ValidateToken(tampered); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := auth.ValidateToken("not-a-jwt"); err == nil {
		t.Error("expected an error")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plain text")
	}
	if !auth.CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
}
