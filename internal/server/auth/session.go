package auth

import (
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// SessionOptions configures the session cookie attributes.
//
// Secure defaults to false for plain-HTTP development setups and must be
// enabled behind TLS.
type SessionOptions struct {
	Lifetime time.Duration
	Secure   bool
}

// NewSessionCookie builds the session cookie for a freshly issued token.
// The cookie expires on its own schedule, independent of the token, which
// carries no expiry.
func NewSessionCookie(token string, opts SessionOptions) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(opts.Lifetime),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds an expired cookie that removes the session
// cookie from the client. Used on logout and on self-deletion.
func ClearSessionCookie(opts SessionOptions) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExtractToken reads the session token from the request: the session cookie
// when present, otherwise a standard bearer Authorization header. The second
// return value reports whether a token was found at all.
func ExtractToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	header := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found && token != "" {
		return token, true
	}

	return "", false
}
