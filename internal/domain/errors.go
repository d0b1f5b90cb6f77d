package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNotFound is returned when a shopping item, meal plan or recipe does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned when no user identity accompanies a request
	ErrUnauthorized = errors.New("unauthenticated")

	// ErrForbidden is returned when a user acts on a resource owned by someone else
	ErrForbidden = errors.New("unauthorized to perform this action")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
