package specification

// not is the inverse of the given Spec.
type not[T any] struct {
	Spec Specification[T]
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.Spec.IsSatisfiedBy(t)
}
