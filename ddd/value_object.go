package ddd

// ValueObject has no identity: two values with equal attributes are interchangeable.
type ValueObject[T any] interface {
	SameValueAs(other T) bool
}
