package domain

import (
	"github.com/google/uuid"
)

// MaxSessionIDLength bounds the size of a session token accepted from a client.
const MaxSessionIDLength = 128

// SessionID is an opaque bearer token identifying an anonymous browsing
// session. Holding the token is the only proof of ownership: it is not a
// verified user identity and carries no claims.
//
// The zero value represents "no session".
type SessionID struct {
	token string
}

// NewSessionID mints a fresh random 128-bit session token.
func NewSessionID() SessionID {
	return SessionID{token: uuid.NewString()}
}

// ParseSessionID wraps a client-supplied token. Presence is the only real
// check; the length and character bounds keep garbage out of the store.
// Returns ErrUnauthorized for unusable values.
func ParseSessionID(s string) (SessionID, error) {
	if s == "" || len(s) > MaxSessionIDLength {
		return SessionID{}, ErrUnauthorized
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x21 || c == 0x7f {
			return SessionID{}, ErrUnauthorized
		}
	}
	return SessionID{token: s}, nil
}

// String returns the raw token.
func (s SessionID) String() string { return s.token }

// IsZero reports whether s carries no token.
func (s SessionID) IsZero() bool { return s.token == "" }
