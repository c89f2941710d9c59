package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/app2/products-catalog/internal/core/domain"
)

func TestTokenService_IssueValidate_Roundtrip(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	token, expiresAt, err := svc.Issue("user-1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	remaining := time.Until(expiresAt)
	if remaining < time.Hour+59*time.Minute || remaining > 2*time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	identity, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if identity.ID != "user-1" || identity.Login != "alice" || identity.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	claims := sessionClaims{
		Login: "alice",
		Role:  domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Validate_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	token, _, err := svc.Issue("user-1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	sig := parts[2]
	flipped := byte('A')
	if sig[0] == 'A' {
		flipped = 'B'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(flipped) + sig[1:]

	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Validate_TamperedClaims(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	token, _, err := svc.Issue("user-1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Swap the payload segment for another token's payload: the signature
	// no longer covers the claims, so validation must fail without
	// trusting any of them.
	other, _, err := svc.Issue("user-1", "alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, err := svc.Validate(forged); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Validate_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 2*time.Hour)
	verifier := NewTokenService("secret-b", 2*time.Hour)

	token, _, err := issuer.Issue("user-1", "alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Validate_Malformed(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_Validate_RejectsForeignAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", 2*time.Hour)

	claims := sessionClaims{
		Login: "alice",
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatalf("expected validation failure for HS512 token")
	}
}
