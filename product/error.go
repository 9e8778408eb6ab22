package product

import "errors"

var (
	// ErrUnknownLocation location code is not one of ny, la, ch
	ErrUnknownLocation = errors.New("unknown location")

	// ErrUnknownPriceRange price range code is not one of low, medium, high
	ErrUnknownPriceRange = errors.New("unknown price range")

	// ErrMissingField a product is decoded without its location or price range
	ErrMissingField = errors.New("missing product field")
)
