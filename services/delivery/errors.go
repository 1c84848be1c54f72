package delivery

import "errors"

var (
	// ErrInvalidCoordinates is returned for non-finite or out-of-range coordinates
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrMissingQuery is returned when a place search has no query text
	ErrMissingQuery = errors.New("search query is required")
	// ErrProviderNotConfigured is returned by lookups when no API key is set
	ErrProviderNotConfigured = errors.New("maps API key not configured")
	// ErrNoResults is returned when the provider found nothing
	ErrNoResults = errors.New("no results found")
	// ErrProviderStatus wraps a non-OK status reported by the provider
	ErrProviderStatus = errors.New("maps provider returned non-OK status")
	// ErrCacheMiss is returned by GeoCacheRepo when no entry exists
	ErrCacheMiss = errors.New("cache miss")
)
