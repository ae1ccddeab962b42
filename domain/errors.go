package domain

import "errors"

var (
	// ErrEmptyQuery indicates a search was requested without any terms.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrUpstream indicates the product source could not be reached.
	ErrUpstream = errors.New("product source unavailable")

	// ErrShareUnavailable indicates neither native share nor clipboard is available.
	ErrShareUnavailable = errors.New("share unavailable")
)
