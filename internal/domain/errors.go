package domain

import "errors"

var (
	// ErrNetwork is returned when a vendor endpoint cannot be reached or
	// answers with a non-2xx status
	ErrNetwork = errors.New("vendor request failed")

	// ErrParse is returned when a page or feed record does not have the expected shape
	ErrParse = errors.New("unexpected page or feed shape")

	// ErrCacheMiss is returned when an ingredient is not found in the cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogMismatch is returned when a search entry has no catalog counterpart
	ErrCatalogMismatch = errors.New("catalog record not found for search entry")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
