package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	at, err := NewAccessToken("secret", 42, "ADMIN", 15)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != "ADMIN" {
		t.Fatalf("role claim lost: %v", claims)
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Fatalf("subject claim lost: %v", claims["sub"])
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("expected 96 hex chars, got %d", len(rt.Raw))
	}
	if HashRefreshRaw(rt.Raw) != HashRefreshRaw(rt.Raw) {
		t.Fatalf("hash must be deterministic")
	}
	other, _ := NewRefreshToken(7)
	if rt.Raw == other.Raw {
		t.Fatalf("two refresh tokens must differ")
	}
}

func TestPasswordHashVerify(t *testing.T) {
	hash, err := HashPassword("s3cret", 4) // low cost keeps the test fast
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
