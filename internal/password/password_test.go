package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" || hash == "pw123" {
		t.Fatalf("expected opaque hash, got %q", hash)
	}

	if !h.Verify("pw123", hash) {
		t.Fatal("expected verification to succeed for original password")
	}
	if h.Verify("other", hash) {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatal("expected distinct hashes for repeated calls")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatal("both hashes must verify against the original password")
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	h := NewHasher(1000)
	if h.cost != DefaultCost {
		t.Fatalf("expected cost %d, got %d", DefaultCost, h.cost)
	}

	if Default().cost != DefaultCost {
		t.Fatalf("expected default cost %d", DefaultCost)
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	h := Default()
	if h.Verify("pw123", "not-a-bcrypt-hash") {
		t.Fatal("expected verification to fail for malformed hash")
	}
}
