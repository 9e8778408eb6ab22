package specification

// Specification is a single business rule that can be tested against a candidate.
// Implementations must be pure: the result depends only on t.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool
}

// Func adapts an ordinary function to a Specification.
type Func[T any] func(t T) bool

func (f Func[T]) IsSatisfiedBy(t T) bool {
	return f(t)
}

// New create a specification from predicate.
func New[T any](predicate func(t T) bool) Specification[T] {
	return Func[T](predicate)
}

// And create a new specification that is the AND operation of left and right.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &and[T]{Left: left, Right: right}
}

// Or create a new specification that is the OR operation of left and right.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return &or[T]{Left: left, Right: right}
}

// Not create a new specification that is the NOT operation of spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return &not[T]{Spec: spec}
}

// Conjunction create a new specification satisfied only when all specs are.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return &conjunction[T]{Specs: specs}
}

// Disjunction create a new specification satisfied when any of specs is.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return &disjunction[T]{Specs: specs}
}
