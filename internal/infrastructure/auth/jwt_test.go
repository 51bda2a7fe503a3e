package auth

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager()

	token, err := manager.GenerateToken("3f2a1b0c-aaaa-4bbb-8ccc-dddd00001111")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	userID, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if userID != "3f2a1b0c-aaaa-4bbb-8ccc-dddd00001111" {
		t.Errorf("Expected user id back from token, got %s", userID)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	manager := NewJWTManager()

	token, err := manager.GenerateToken("u1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Портим подпись
	tampered := token[:len(token)-2] + "xx"
	if tampered == token {
		tampered = token[:len(token)-2] + "yy"
	}

	if _, err := manager.ValidateToken(tampered); err == nil {
		t.Error("Expected tampered token to be rejected")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager()

	for _, token := range []string{"", "not-a-token", strings.Repeat("a.", 3)} {
		if _, err := manager.ValidateToken(token); err == nil {
			t.Errorf("Expected token %q to be rejected", token)
		}
	}
}
