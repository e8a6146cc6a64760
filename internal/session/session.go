package session // package session implements the client-side signed session cookie

import (
    "net/http" // cookie construction
    "time"     // expiry handling

    "github.com/golang-jwt/jwt/v5" // JWT library for signing and parsing the cookie payload
    "github.com/labstack/echo/v4"  // echo context for cookie and request access
)

// CookieName is the name of the cookie that carries the session blob.
const CookieName = "watchlist_session"

// contextKey is where the decoded session is stashed in the echo context by
// the Load middleware so handlers do not re-parse the cookie.
const contextKey = "session"

// cookieTTL bounds how long a session cookie stays valid.  The value is
// embedded in the signed payload as the exp claim, so a stolen cookie
// eventually dies even if the browser keeps it.
const cookieTTL = 30 * 24 * time.Hour

// Session is the server's view of the signed cookie.  All state lives on
// the client; the server only holds the signing secret.  An unauthenticated
// visitor has an empty Email, which is what the login gate checks.
//
// Flash carries a one-shot notification (e.g. "User registered
// successfully") across a redirect; it is consumed by the next render.
type Session struct {
    UserID string // id of the authenticated user, empty for guests
    Email  string // email of the authenticated user, empty for guests
    Theme  string // cosmetic UI preference, "dark" or "light"
    Flash  *Flash // pending one-shot notification, nil when none
}

// Flash is a one-shot message with a display category ("success", "danger").
type Flash struct {
    Message  string
    Category string
}

// Encode signs the session into a compact JWT string.  Claims mirror the
// Session fields; empty values are omitted so a guest session stays small.
func Encode(secret string, s Session) (string, error) {
    now := time.Now().UTC()
    claims := jwt.MapClaims{
        "exp": now.Add(cookieTTL).Unix(),
        "iat": now.Unix(),
    }
    if s.UserID != "" {
        claims["sub"] = s.UserID
    }
    if s.Email != "" {
        claims["email"] = s.Email
    }
    if s.Theme != "" {
        claims["theme"] = s.Theme
    }
    if s.Flash != nil {
        claims["flash_msg"] = s.Flash.Message
        claims["flash_cat"] = s.Flash.Category
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return t.SignedString([]byte(secret))
}

// Decode parses and verifies a signed session string.  Any failure (bad
// signature, wrong algorithm, expired token, garbage input) yields the
// zero Session: a tampered cookie is simply treated as logged out.
func Decode(secret, raw string) Session {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC to prevent
        // algorithm-substitution tricks.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Session{}
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Session{}
    }
    s := Session{}
    if v, ok := claims["sub"].(string); ok {
        s.UserID = v
    }
    if v, ok := claims["email"].(string); ok {
        s.Email = v
    }
    if v, ok := claims["theme"].(string); ok {
        s.Theme = v
    }
    if msg, ok := claims["flash_msg"].(string); ok {
        cat, _ := claims["flash_cat"].(string)
        s.Flash = &Flash{Message: msg, Category: cat}
    }
    return s
}

// Load reads the session cookie from the request and decodes it.  A missing
// or invalid cookie yields the zero Session.
func Load(c echo.Context, secret string) Session {
    cookie, err := c.Cookie(CookieName)
    if err != nil || cookie.Value == "" {
        return Session{}
    }
    return Decode(secret, cookie.Value)
}

// FromContext returns the session placed in the echo context by the Load
// middleware.  Handlers must not read the cookie themselves: Save updates
// the context copy so later reads within the same request stay consistent.
func FromContext(c echo.Context) Session {
    if s, ok := c.Get(contextKey).(Session); ok {
        return s
    }
    return Session{}
}

// Store places a session into the echo context without touching the cookie.
// Used by the Load middleware and by tests.
func Store(c echo.Context, s Session) {
    c.Set(contextKey, s)
}

// Save signs the session, writes it back to the response cookie and updates
// the context copy.
func Save(c echo.Context, secret string, s Session) error {
    raw, err := Encode(secret, s)
    if err != nil {
        return err
    }
    c.SetCookie(&http.Cookie{
        Name:     CookieName,
        Value:    raw,
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
        MaxAge:   int(cookieTTL / time.Second),
    })
    Store(c, s)
    return nil
}

// PopFlash removes and returns the pending flash message, persisting the
// cleared session so the message shows exactly once.  Returns nil when no
// flash is pending.
func PopFlash(c echo.Context, secret string) *Flash {
    s := FromContext(c)
    if s.Flash == nil {
        return nil
    }
    f := s.Flash
    s.Flash = nil
    if err := Save(c, secret, s); err != nil {
        return f
    }
    return f
}
