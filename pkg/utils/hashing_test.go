package utils

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("not a bcrypt digest: %q", hash)
	}

	if err := ComparePasswords(hash, "secret123"); err != nil {
		t.Fatalf("ComparePasswords rejected correct password: %v", err)
	}
	if err := ComparePasswords(hash, "wrong-password"); err == nil {
		t.Fatal("ComparePasswords accepted wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same input are identical, salting is broken")
	}
}
