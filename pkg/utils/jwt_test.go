package utils

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	SetSigningKey([]byte("test-secret"))
	os.Exit(m.Run())
}

func TestCreateAndValidate_Success(t *testing.T) {
	userID := "user-123"

	tok, err := CreateToken(userID)
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	got, err := ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if got != userID {
		t.Fatalf("userID mismatch: got %q want %q", got, userID)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	// CreateToken always signs 30 days out, so build an already-expired
	// token with the same key directly.
	claims := &Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = ValidateToken(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	claims := &Claims{
		UserID: "u2",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u2",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = ValidateToken(tok)
	if !errors.Is(err, ErrTokenBadSignature) {
		t.Fatalf("expected ErrTokenBadSignature, got %v", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	// alg=none style tokens must not pass the HMAC check.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u3"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("expected error for unsigned token, got nil")
	}
}

func TestTokenLifetime_Is30Days(t *testing.T) {
	tok, err := CreateToken("u4")
	if err != nil {
		t.Fatalf("CreateToken error: %v", err)
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 30*24*time.Hour {
		t.Fatalf("lifetime = %v, want 720h", lifetime)
	}
}
