package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return tokenString
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("ops", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestGenerateTokenRequiresSubject(t *testing.T) {
	_, err := GenerateToken("", "test-secret", time.Hour)
	if !errors.Is(err, ErrSubjectMissing) {
		t.Errorf("GenerateToken() error = %v, want %v", err, ErrSubjectMissing)
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("ops", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.Subject != "ops" {
		t.Errorf("ValidateToken() Subject = %q, want %q", claims.Subject, "ops")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("ops", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("ops", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenRejectsClaims(t *testing.T) {
	secret := "test-secret"
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{
			name: "wrong issuer",
			claims: jwt.RegisteredClaims{
				Issuer: "wrong-issuer", Subject: "ops", Audience: jwt.ClaimStrings{tokenAudience}, ExpiresAt: future,
			},
		},
		{
			name: "wrong audience",
			claims: jwt.RegisteredClaims{
				Issuer: tokenIssuer, Subject: "ops", Audience: jwt.ClaimStrings{"wrong-audience"}, ExpiresAt: future,
			},
		},
		{
			name: "missing subject",
			claims: jwt.RegisteredClaims{
				Issuer: tokenIssuer, Audience: jwt.ClaimStrings{tokenAudience}, ExpiresAt: future,
			},
		},
		{
			name: "missing expiry",
			claims: jwt.RegisteredClaims{
				Issuer: tokenIssuer, Subject: "ops", Audience: jwt.ClaimStrings{tokenAudience},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := signClaims(t, Claims{RegisteredClaims: tt.claims}, secret)
			if _, err := ValidateToken(tokenString, secret); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}
