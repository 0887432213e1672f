package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrVendorExists    = errors.New("vendor profile already exists")
	ErrProductNotFound = errors.New("product not found")

	// ErrVendorNotEligible is returned when a vendor that is not yet approved,
	// or has been blocked, attempts to manage listings.
	ErrVendorNotEligible = errors.New("vendor not approved or inactive")

	ErrInvalidInput = errors.New("invalid input")

	// ErrPlacesUpstream marks a non-success status from the geocoding
	// provider; the wrapped message carries the upstream status string.
	ErrPlacesUpstream = errors.New("places upstream error")
)
