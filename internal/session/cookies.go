// Package session reads and issues the anonymous session cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/mealtrack-backend/internal/config"
	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// ErrNoSession reports that the request carries no session cookie.
var ErrNoSession = errors.New("no session cookie")

// Cookies reads and writes the session cookie according to SessionConfig.
type Cookies struct {
	name     string
	path     string
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// NewCookies creates Cookies from configuration.
func NewCookies(cfg config.SessionConfig) *Cookies {
	return &Cookies{
		name:     cfg.CookieName,
		path:     cfg.CookiePath,
		maxAge:   int(cfg.TTL.Seconds()),
		secure:   cfg.Secure,
		httpOnly: cfg.HTTPOnly,
		sameSite: cfg.SameSiteMode(),
	}
}

// Read returns the session carried by the request. A missing or empty
// cookie yields ErrNoSession. A cookie that is present but unusable (too
// long or containing control bytes) yields an error wrapping
// domain.ErrUnauthorized, so callers never replace a client's session
// behind its back.
func (c *Cookies) Read(r *http.Request) (domain.SessionID, error) {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return domain.SessionID{}, ErrNoSession
	}
	id, err := domain.ParseSessionID(cookie.Value)
	if err != nil {
		return domain.SessionID{}, fmt.Errorf("session cookie %s: %w", c.name, err)
	}
	return id, nil
}

// Issue mints a new session and attaches it to the response as a cookie.
// Must be called before the response header is written.
func (c *Cookies) Issue(w http.ResponseWriter) domain.SessionID {
	id := domain.NewSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    id.String(),
		Path:     c.path,
		MaxAge:   c.maxAge,
		Secure:   c.secure,
		HttpOnly: c.httpOnly,
		SameSite: c.sameSite,
	})
	return id
}
