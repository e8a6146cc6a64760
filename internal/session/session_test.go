package session

import (
	"testing"
)

const testSecret = "session-test-secret"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Session{
		UserID: "abc123",
		Email:  "a@x.com",
		Theme:  "dark",
		Flash:  &Flash{Message: "User registered successfully", Category: "success"},
	}
	raw, err := Encode(testSecret, in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := Decode(testSecret, raw)
	if out.UserID != in.UserID || out.Email != in.Email || out.Theme != in.Theme {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if out.Flash == nil || out.Flash.Message != in.Flash.Message || out.Flash.Category != in.Flash.Category {
		t.Fatalf("flash not preserved: got %+v", out.Flash)
	}
}

func TestDecodeEmptyClaimsOmitted(t *testing.T) {
	raw, err := Encode(testSecret, Session{Theme: "light"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := Decode(testSecret, raw)
	if out.Email != "" || out.UserID != "" || out.Flash != nil {
		t.Fatalf("expected guest session, got %+v", out)
	}
	if out.Theme != "light" {
		t.Fatalf("expected theme to survive, got %q", out.Theme)
	}
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	raw, err := Encode(testSecret, Session{UserID: "abc123", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Flip a character in the payload section.
	tampered := []byte(raw)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	if s := Decode(testSecret, string(tampered)); s.Email != "" {
		t.Fatalf("tampered token must decode to an empty session, got %+v", s)
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	raw, err := Encode(testSecret, Session{UserID: "abc123", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if s := Decode("another-secret", raw); s.Email != "" {
		t.Fatalf("wrong secret must decode to an empty session, got %+v", s)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if s := Decode(testSecret, "not-a-token"); s != (Session{}) {
		t.Fatalf("garbage must decode to the zero session, got %+v", s)
	}
}
