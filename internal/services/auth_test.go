package services

import "testing"

func TestIssueAndParseToken(t *testing.T) {
	svc := NewAuthService("test-secret")

	user := NewIdentity("  Alice Johnson ", " Alice@Example.COM ")
	if user.ID == "" {
		t.Fatal("expected a generated user id")
	}
	if user.Name != "Alice Johnson" {
		t.Errorf("Name = %q, want trimmed", user.Name)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email = %q, want lowercased", user.Email)
	}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	parsed, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsed.ID != user.ID || parsed.Name != user.Name || parsed.Email != user.Email {
		t.Errorf("parsed %+v, want %+v", parsed, user)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").IssueToken(NewIdentity("Bob", "bob@example.com"))
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := NewAuthService("secret-b").ParseToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := NewAuthService("secret").ParseToken("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
