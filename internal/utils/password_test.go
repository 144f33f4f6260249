package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "pw1" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if !CheckPassword(hash, "pw1") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hash, "pw2") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("same", bcrypt.MinCost)
	b, _ := HashPassword("same", bcrypt.MinCost)
	if a == b {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected valid hash, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

// TestCheckPassword_2bPrefix verifies compatibility with hashes written by
// other bcrypt implementations using the $2b$ prefix.
func TestCheckPassword_2bPrefix(t *testing.T) {
	hash, _ := HashPassword("secret", bcrypt.MinCost)
	hash2b := "$2b$" + strings.TrimPrefix(hash, "$2a$")
	if !CheckPassword(hash2b, "secret") {
		t.Error("expected $2b$ hash to be accepted")
	}
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	if CheckPassword("not-a-hash", "secret") {
		t.Error("expected garbage hash to be rejected")
	}
}

func TestHashPassword_LongPassword(t *testing.T) {
	long := strings.Repeat("p", 80)

	hash, err := HashPassword(long, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !CheckPassword(hash, long) {
		t.Error("expected long password to match its hash")
	}
	// bytes past the 72nd are not significant
	if !CheckPassword(hash, strings.Repeat("p", 72)+"different") {
		t.Error("expected password sharing the first 72 bytes to match")
	}
	if CheckPassword(hash, strings.Repeat("p", 71)) {
		t.Error("expected shorter password to be rejected")
	}
}
