package crypto

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueToken(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty string")
	}
}

func TestVerifyTokenValid(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	userID := int64(42)
	email := "a@x.com"

	token, err := m.Issue(userID, email)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}

	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() unexpected error: %v", err)
	}
	if id != userID {
		t.Errorf("Verify() user id = %d, want %d", id, userID)
	}
	if claims.Email != email {
		t.Errorf("Verify() email = %q, want %q", claims.Email, email)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	if _, err := m.Verify("not-a-valid-token"); err == nil {
		t.Error("Verify() expected error for malformed token")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("correct-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, err := issuer.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() expected error for wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Millisecond)

	token, err := m.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := m.Verify(token); err == nil {
		t.Error("Verify() expected error for expired token")
	}
}

func TestVerifyTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"
	m := NewTokenManager(secret, time.Hour)

	tokenString := signedToken(t, secret, "someone-else", tokenAudience)
	if _, err := m.Verify(tokenString); err == nil {
		t.Error("Verify() expected error for wrong issuer")
	}
}

func TestVerifyTokenWrongAudience(t *testing.T) {
	secret := "test-secret"
	m := NewTokenManager(secret, time.Hour)

	tokenString := signedToken(t, secret, tokenIssuer, "someone-else")
	if _, err := m.Verify(tokenString); err == nil {
		t.Error("Verify() expected error for wrong audience")
	}
}

func TestClaimsUserIDNonNumericSubject(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}

	if _, err := claims.UserID(); err == nil {
		t.Error("UserID() expected error for non-numeric subject")
	}
}

func signedToken(t *testing.T, secret, issuer, audience string) string {
	t.Helper()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(42, 10),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "a@x.com",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return tokenString
}
