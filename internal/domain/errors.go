package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProductNotFound is returned when a barcode matches nothing in a data source
	ErrProductNotFound = errors.New("product not found")

	// ErrProviderFailure is returned when the Open Food Facts request fails
	ErrProviderFailure = errors.New("food data provider request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
