package token

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	codec, err := NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	tokenString, err := codec.Issue("user@example.com", "홍길동")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := codec.Parse(tokenString)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user@example.com" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Username != "홍길동" {
		t.Fatalf("unexpected username %q", claims.Username)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatal("expected a future expiry")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewCodec("secret-a", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	verifier, err := NewCodec("secret-b", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	tokenString, err := issuer.Issue("user@example.com", "홍길동")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Parse(tokenString); err == nil {
		t.Fatal("expected parse to fail with a different secret")
	}
}

func TestParseRejectsMalformedToken(t *testing.T) {
	codec, err := NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Parse(tokenString); err == nil {
			t.Fatalf("expected parse of %q to fail", tokenString)
		}
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	codec, err := NewCodec("test-secret", -time.Hour)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	tokenString, err := codec.Issue("user@example.com", "홍길동")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := codec.Parse(tokenString); err == nil {
		t.Fatal("expected parse of an expired token to fail")
	}
}

func TestNewCodecRequiresSecret(t *testing.T) {
	if _, err := NewCodec("  ", time.Hour); err == nil {
		t.Fatal("expected an error for an empty secret")
	}
}
