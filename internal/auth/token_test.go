package auth

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	userID, err := Parse("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse("other", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	token, err := Sign("secret", 42, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse("secret", token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("secret", "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
