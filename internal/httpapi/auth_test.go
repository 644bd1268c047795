package httpapi

import (
	"testing"

	"github.com/1broseidon/wmhttp/internal/config"
)

func TestHashCredential(t *testing.T) {
	if got := HashCredential("foobar"); got != config.DefaultCredentialDigest {
		t.Fatalf("HashCredential(foobar) = %q, want %q", got, config.DefaultCredentialDigest)
	}
	// SHA-256 of the empty string.
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HashCredential(""); got != empty {
		t.Fatalf("HashCredential(\"\") = %q, want %q", got, empty)
	}
}

func TestAuthenticator_Admit(t *testing.T) {
	auth := NewAuthenticator(config.DefaultCredentialDigest)

	tests := []struct {
		credential string
		want       bool
	}{
		{"foobar", true},
		{"", false},
		{"Foobar", false},
		{"foobar ", false},
		{"Bearer foobar", false},
		{config.DefaultCredentialDigest, false},
	}
	for _, tt := range tests {
		if got := auth.Admit(tt.credential); got != tt.want {
			t.Errorf("Admit(%q) = %v, want %v", tt.credential, got, tt.want)
		}
	}
}

func TestAuthenticator_UpperCaseDigest(t *testing.T) {
	auth := NewAuthenticator("C3AB8FF13720E8AD9047DD39466B3C8974E592C2FA383D4A3960714CAEF0C4F2")
	if !auth.Admit("foobar") {
		t.Fatal("Admit(foobar) = false for upper-case digest")
	}
}

func TestAuthenticator_OtherSecret(t *testing.T) {
	auth := NewAuthenticator(HashCredential("s3cret"))
	if !auth.Admit("s3cret") {
		t.Fatal("Admit(s3cret) = false")
	}
	if auth.Admit("foobar") {
		t.Fatal("Admit(foobar) = true for a different digest")
	}
}
