package credential

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid minimal", "abcdefghij1!", true},
		{"valid with specials", `abc123!@#":{}`, true},
		{"valid max length", "a1!aaaaaaaaaaaaaaaaa", true},
		{"too short", "abcdefgh1!", false},
		{"too long", "abcdefghijklmnopqrs1!", false},
		{"no lowercase", "ABCDEFGHIJ1!", false},
		{"no digit", "abcdefghijk!", false},
		{"no special", "abcdefghijk1", false},
		{"special not in list", "abcdefghij1-", false},
		{"empty", "", false},
		{"uppercase not required", "abcdefghij1!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantOK && err != nil {
				t.Fatalf("expected %q to be accepted, got %v", tt.password, err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatalf("expected %q to be rejected", tt.password)
				}
				var policyErr *PolicyError
				if !errors.As(err, &policyErr) {
					t.Fatalf("expected a PolicyError, got %T", err)
				}
				if policyErr.Field != "password" {
					t.Fatalf("unexpected field %q", policyErr.Field)
				}
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{"single syllable", "가", true},
		{"typical name", "홍길동", true},
		{"ten syllables", "가나다라마바사아자차", true},
		{"empty", "", false},
		{"eleven syllables", "가나다라마바사아자차카", false},
		{"latin letters", "hong", false},
		{"mixed hangul latin", "홍길동a", false},
		{"with space", "홍 길동", false},
		{"with digit", "홍길동1", false},
		{"jamo not syllable", "ㄱㄴㄷ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantOK && err != nil {
				t.Fatalf("expected %q to be accepted, got %v", tt.username, err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatalf("expected %q to be rejected", tt.username)
				}
				var policyErr *PolicyError
				if !errors.As(err, &policyErr) {
					t.Fatalf("expected a PolicyError, got %T", err)
				}
				if policyErr.Field != "username" {
					t.Fatalf("unexpected field %q", policyErr.Field)
				}
			}
		})
	}
}
