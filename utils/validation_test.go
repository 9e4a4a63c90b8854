package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidPropertyID(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	tests := []struct {
		id   string
		want bool
	}{
		{valid, true},
		{"", false},
		{"not-hex", false},
		{"abc123", false}, // too short
	}
	for _, tt := range tests {
		if got := IsValidPropertyID(tt.id); got != tt.want {
			t.Errorf("IsValidPropertyID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestRequestValidator(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	v := NewRequestValidator()

	if err := v.Validate(&payload{Email: "a@b.com"}); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := v.Validate(&payload{Email: "nope"}); err == nil {
		t.Errorf("invalid payload accepted")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatalf("password stored in the clear")
	}
	if err := CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword rejected the correct password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Errorf("CheckPassword accepted a wrong password")
	}
}

func TestQueryKeyDeterministic(t *testing.T) {
	a := QueryKey("properties", map[string]string{"category": "Villa", "sort": "none"})
	b := QueryKey("properties", map[string]string{"sort": "none", "category": "Villa"})
	if a != b {
		t.Errorf("key depends on map order: %q vs %q", a, b)
	}

	c := QueryKey("properties", map[string]string{"category": "House", "sort": "none"})
	if a == c {
		t.Errorf("distinct params produced the same key %q", a)
	}

	if QueryKey("reviews", nil) == QueryKey("properties", nil) {
		t.Errorf("prefix not part of the key")
	}
}
