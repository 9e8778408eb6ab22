package specification

// or is the OR of two other specifications.
type or[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (spec *or[T]) IsSatisfiedBy(t T) bool {
	return spec.Left.IsSatisfiedBy(t) || spec.Right.IsSatisfiedBy(t)
}
