// jwt_test.go — Unit tests for JWT generation and validation.
package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

const testSecret = "test-secret-do-not-use-in-production"

func testUser() *models.User {
	return &models.User{
		ID:    "11111111-2222-3333-4444-555555555555",
		Email: "reader@example.com",
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateJWT returned empty token")
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.UserID != testUser().ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, testUser().ID)
	}
	if claims.Email != testUser().Email {
		t.Errorf("Email = %q, want %q", claims.Email, testUser().Email)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) < 71*time.Hour {
		t.Error("token should expire roughly 72 hours out")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ParseJWT(token, "a-different-secret"); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	claims := JWTClaims{
		UserID: testUser().ID,
		Email:  testUser().Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-73 * time.Hour)),
			Subject:   testUser().ID,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not.a.jwt", testSecret); err == nil {
		t.Error("expected error for malformed token")
	}
}
