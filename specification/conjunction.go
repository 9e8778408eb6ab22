package specification

// conjunction holds when every one of Specs holds. An empty conjunction always holds.
type conjunction[T any] struct {
	Specs []Specification[T]
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.Specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
