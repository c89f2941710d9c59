package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductExists      = errors.New("product name already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrForbidden          = errors.New("access forbidden")
)

// Token validation errors. All three are terminal for the request: the
// authorization gate treats any of them as an authentication failure.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)
