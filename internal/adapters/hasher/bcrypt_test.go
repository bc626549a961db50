package hasher

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := &Bcrypt{Cost: bcrypt.MinCost}

	digest, err := h.Hash("Passw0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(digest, "Passw0rd") {
		t.Fatal("digest contains the plaintext password")
	}

	if !h.Verify("Passw0rd", digest) {
		t.Error("expected the original password to verify")
	}
	if h.Verify("passw0rd", digest) {
		t.Error("verification must be case-sensitive")
	}
	if h.Verify("Passw0rd", "not-a-digest") {
		t.Error("malformed digest must not verify")
	}
}

func TestBcrypt_Salted(t *testing.T) {
	h := &Bcrypt{Cost: bcrypt.MinCost}

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Error("expected different digests for the same password")
	}
}

func TestBcrypt_TooLong(t *testing.T) {
	h := &Bcrypt{Cost: bcrypt.MinCost}

	_, err := h.Hash(strings.Repeat("x", 73))
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
