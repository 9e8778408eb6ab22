package specification

import "github.com/go-leo/gox/slicex"

// Filter returns a new slice holding the items that satisfy spec, in their original order.
// items is never modified. The result is empty, not nil, when nothing matches.
func Filter[T any](items []T, spec Specification[T]) []T {
	return FilterFunc(items, spec.IsSatisfiedBy)
}

// FilterFunc is like Filter but takes a bare predicate.
func FilterFunc[T any](items []T, predicate func(t T) bool) []T {
	r := slicex.Filter(items, func(_ int, t T) bool { return predicate(t) })
	if r == nil {
		return []T{}
	}
	return r
}
