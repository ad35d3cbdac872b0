package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("asha@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	email, role, err := ExtractSessionClaims(token)
	if err != nil {
		t.Fatalf("ExtractSessionClaims: %v", err)
	}
	if email != "asha@example.com" || role != "admin" {
		t.Fatalf("claims = %s/%s", email, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("asha@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractSessionClaims(token); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("asha@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	tampered := token + "xx"
	if _, _, err := ExtractSessionClaims(tampered); err == nil {
		t.Fatalf("tampered token must be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatalf("hash must be deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatalf("different tokens must hash differently")
	}
}
