package auth

import "testing"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(User{ID: "user-1", Role: "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected userId user-1, got %s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role admin, got %s", claims.Role)
	}
	if claims.ExpiresAt == 0 {
		t.Error("expected an expiry on the token")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(User{ID: "user-1", Role: "doctor"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := "A"
	if token[len(token)-1] == 'A' {
		last = "B"
	}
	tampered := token[:len(token)-1] + last
	if _, err := ParseToken(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}
