package specification

// disjunction holds when at least one of Specs holds.
type disjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
