package product

import "github.com/go-leo/design-pattern-filter/specification"

var (
	_ specification.Specification[*Product] = LocationSpec[*Product]{}
	_ specification.Specification[*Product] = PriceRangeSpec[*Product]{}
)

// LocationSpec is satisfied by items located at Location.
type LocationSpec[T Located] struct {
	Location Location
}

func (spec LocationSpec[T]) IsSatisfiedBy(item T) bool {
	return item.Location() == spec.Location
}

// PriceRangeSpec is satisfied by items priced in PriceRange.
type PriceRangeSpec[T Priced] struct {
	PriceRange PriceRange
}

func (spec PriceRangeSpec[T]) IsSatisfiedBy(item T) bool {
	return item.PriceRange() == spec.PriceRange
}
