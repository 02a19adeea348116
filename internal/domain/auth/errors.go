package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for every authentication failure,
	// whether the identifier is unknown or the password mismatched, so the
	// response never reveals which identities exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrGoogleLoginFailed  = errors.New("google login failed")
)
