package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, "alice", "token-id", duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.String() != token.SignedString {
		t.Error("expected String to return the signed token")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", claims.Subject)
	}
	if claims.ID != "token-id" {
		t.Errorf("expected jti 'token-id', got %s", claims.ID)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != duration {
		t.Errorf("expected lifetime %v, got %v", duration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, "", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, "bob", "jti-1", 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Username != "bob" {
		t.Errorf("expected username bob, got %s", parsedToken.Username)
	}
	if parsedToken.ID != "jti-1" {
		t.Errorf("expected jti jti-1, got %s", parsedToken.ID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "alice", "", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Fatal("expected error due to signature mismatch, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("test-issuer", "alice", "", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "alice", "", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected signing error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Token xyz", want: "xyz"},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrNoBearerToken) {
					t.Fatalf("expected ErrNoBearerToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUnverifiedToken(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "carol", "", time.Hour, "key")

	parsed, err := ParseUnverifiedToken(genToken.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Username != "carol" {
		t.Errorf("expected carol, got %s", parsed.Username)
	}
	if parsed.ExpiresAt == nil {
		t.Error("expected expiry to be decoded")
	}

	if _, err = ParseUnverifiedToken("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
