package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestIssueAndParse(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	signed, err := issuer.Issue("64f1c0ffee0000000000abcd")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := issuer.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != "64f1c0ffee0000000000abcd" {
		t.Fatalf("expected claimed id to round-trip, got %q", id)
	}
}

func TestClaimShape(t *testing.T) {
	issuer, err := NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}

	signed, err := issuer.Issue("abc123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected compact JWT, got %d segments", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	var claims struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if claims.User.ID != "abc123" {
		t.Fatalf("expected {user:{id}} claim, got payload %s", payload)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("correct-secret")
	other, _ := NewIssuer("wrong-secret")

	signed, err := issuer.Issue("abc123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := other.Parse(signed); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer, _ := NewIssuer("test-secret")
	if _, err := issuer.Parse("not-a-token"); err == nil {
		t.Fatal("expected parse to fail for malformed token")
	}
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	if _, err := NewIssuer(""); err == nil {
		t.Fatal("expected constructor to reject empty secret")
	}
}
