package domain

import (
	"fmt"
	"strings"
)

// AccountColumns is the header of the account store
var AccountColumns = []string{"username", "password_hash"}

// Account is a stored credential. The password itself is never kept.
type Account struct {
	Username     string
	PasswordHash string
}

// ValidateCredentials rejects blank usernames or passwords and usernames
// that cannot be stored as a single cell.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidValue)
	}
	if strings.ContainsAny(username, "\r\n") {
		return fmt.Errorf("%w: username cannot contain line breaks", ErrInvalidValue)
	}
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidValue)
	}
	return nil
}

// Session is created once after a successful login and handed to
// everything that acts on behalf of the user.
type Session struct {
	Username      string
	Authenticated bool
}

// NewSession returns an authenticated session for username
func NewSession(username string) *Session {
	return &Session{Username: username, Authenticated: true}
}

// GuestSession is used when login is disabled in the config
func GuestSession() *Session {
	return &Session{Username: "guest"}
}
