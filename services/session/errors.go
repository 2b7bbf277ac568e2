package session

import "errors"

var (
	// ErrInvalidCredentials means the identity provider rejected the
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden means the credentials were valid but the account does
	// not hold the administrative role.
	ErrForbidden = errors.New("account lacks the administrative role")

	// ErrNotAuthenticated means an operation requiring a live session was
	// called without one.
	ErrNotAuthenticated = errors.New("no authenticated session")
)
