package auth

import "errors"

var (
	// ErrUnauthorized means no usable credential was presented.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden means a credential was presented but it is invalid, expired, or insufficient.
	ErrForbidden = errors.New("forbidden access")
)
