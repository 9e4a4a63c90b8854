package utils

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := GenerateJWT("test-secret", time.Hour, userID, "a@b.com", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT("test-secret", token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != userID || claims.Email != "a@b.com" || claims.Role != "user" {
		t.Errorf("claims = %+v, want original identity", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-one", time.Hour, primitive.NewObjectID(), "a@b.com", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ValidateJWT("secret-two", token); err == nil {
		t.Errorf("ValidateJWT accepted a token signed with a different secret")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("test-secret", -time.Minute, primitive.NewObjectID(), "a@b.com", "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ValidateJWT("test-secret", token); err == nil {
		t.Errorf("ValidateJWT accepted an expired token")
	}
}

func TestJWTMissingSecret(t *testing.T) {
	if _, err := GenerateJWT("", time.Hour, primitive.NewObjectID(), "a@b.com", "user"); err == nil {
		t.Errorf("GenerateJWT succeeded without a secret")
	}
	if _, err := ValidateJWT("", "whatever"); err == nil {
		t.Errorf("ValidateJWT succeeded without a secret")
	}
}
