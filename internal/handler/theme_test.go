package handler_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/iliyamo/movie-watchlist/internal/session"
)

func TestToggleThemeTwiceIsIdentity(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := request(e, http.MethodGet, "/toggle-theme?current_page=/login", nil)
	ck := sessionCookie(rec, nil)
	if s := session.Decode(testSecret, ck.Value); s.Theme != "dark" {
		t.Fatalf("expected first toggle to yield dark, got %q", s.Theme)
	}

	rec = request(e, http.MethodGet, "/toggle-theme?current_page=/login", nil, ck)
	ck = sessionCookie(rec, ck)
	if s := session.Decode(testSecret, ck.Value); s.Theme != "light" {
		t.Fatalf("expected second toggle to yield light, got %q", s.Theme)
	}

	// Starting from an explicit value, two toggles return to it.
	raw, err := session.Encode(testSecret, session.Session{Theme: "dark"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	ck = &http.Cookie{Name: session.CookieName, Value: raw}
	rec = request(e, http.MethodGet, "/toggle-theme?current_page=/", nil, ck)
	ck = sessionCookie(rec, ck)
	rec = request(e, http.MethodGet, "/toggle-theme?current_page=/", nil, ck)
	ck = sessionCookie(rec, ck)
	if s := session.Decode(testSecret, ck.Value); s.Theme != "dark" {
		t.Fatalf("expected double toggle to restore dark, got %q", s.Theme)
	}
}

func TestToggleThemePreservesIdentity(t *testing.T) {
	e, _, _ := newTestApp(t)
	ck := loginAs(t, e, "a@x.com", "pass1")

	rec := request(e, http.MethodGet, "/toggle-theme?current_page=/", nil, ck)
	ck = sessionCookie(rec, ck)
	s := session.Decode(testSecret, ck.Value)
	if s.Email != "a@x.com" || s.UserID == "" {
		t.Fatalf("toggling the theme must not log the user out, got %+v", s)
	}
}

func TestToggleThemeRedirectTargets(t *testing.T) {
	e, _, _ := newTestApp(t)

	cases := []struct {
		name   string
		target string
		want   string
	}{
		{"relative path honored", "/movie/abc123", "/movie/abc123"},
		{"missing target falls back", "", "/"},
		{"absolute url rejected", "https://evil.example/phish", "/"},
		{"protocol-relative rejected", "//evil.example", "/"},
		{"backslash trick rejected", "/\\evil.example", "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := "/toggle-theme"
			if tc.target != "" {
				u += "?current_page=" + url.QueryEscape(tc.target)
			}
			rec := request(e, http.MethodGet, u, nil)
			if rec.Code != http.StatusFound {
				t.Fatalf("expected 302, got %d", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tc.want {
				t.Fatalf("expected redirect to %q, got %q", tc.want, got)
			}
		})
	}
}
