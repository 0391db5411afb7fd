package auth

import (
	"testing"

	"github.com/gourmet-express/api/apperr"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", 60)

	token, err := svc.Issue("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "u_1" {
		t.Fatalf("expected subject u_1, got %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim to survive roundtrip, got %q", claims.Email)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -1)

	token, err := svc.Issue("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Validate(token); !apperr.IsKind(err, apperr.Unauthorized) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 60)
	verifier := NewTokenService("secret-b", 60)

	token, err := issuer.Issue("u_1", "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !apperr.IsKind(err, apperr.Unauthorized) {
		t.Fatalf("expected unauthorized for wrong secret, got %v", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 60)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Validate(token); !apperr.IsKind(err, apperr.Unauthorized) {
			t.Fatalf("expected unauthorized for %q, got %v", token, err)
		}
	}
}
