package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("pass1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pass1" {
		t.Fatalf("digest must not equal the plaintext password")
	}
	if !VerifyPassword(hash, "pass1") {
		t.Fatalf("VerifyPassword must accept the original password")
	}
	if VerifyPassword(hash, "pass2") {
		t.Fatalf("VerifyPassword must reject a different password")
	}
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "pass1") {
		t.Fatalf("garbage hash must never verify")
	}
}
