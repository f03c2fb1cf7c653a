package services

import (
	"errors"
	"testing"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/config"
	models "github.com/arjunsharma6622/galaxygrow-server/core/api/models/mongodb"
	"github.com/arjunsharma6622/galaxygrow-server/core/common"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	global.ServerConfig = &config.Configuration{
		JwtSecret:      "test-secret",
		JwtExpireHours: 1,
	}
	return NewTokenService()
}

func TestTokenRoundtrip(t *testing.T) {
	svc := newTestTokenService(t)

	signed, err := svc.Issue("66f1a2b3c4d5e6f708091a0b", models.PrincipalVendor)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if signed == "" {
		t.Fatal("Issue returned an empty token")
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.ID != "66f1a2b3c4d5e6f708091a0b" {
		t.Errorf("unexpected id claim: %q", claims.ID)
	}
	if claims.Kind != models.PrincipalVendor {
		t.Errorf("unexpected kind claim: %q", claims.Kind)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)
	signed, err := svc.Issue("66f1a2b3c4d5e6f708091a0b", models.PrincipalUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	other := &TokenService{secret: []byte("another-secret"), expire: time.Hour}
	if _, err := other.Verify(signed); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	newTestTokenService(t)
	svc := &TokenService{secret: []byte("test-secret"), expire: -time.Minute}

	signed, err := svc.Issue("66f1a2b3c4d5e6f708091a0b", models.PrincipalUser)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Verify(signed); !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenMissingClaims(t *testing.T) {
	svc := newTestTokenService(t)

	signed, err := svc.Issue("", "")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Verify(signed); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for empty claims, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	svc := newTestTokenService(t)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}
