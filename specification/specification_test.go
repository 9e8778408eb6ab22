package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ticket struct {
	Seat  string
	Price int
}

func TestSpecification(t *testing.T) {
	window := New[ticket](func(tk ticket) bool { return tk.Seat == "window" })
	aisle := New[ticket](func(tk ticket) bool { return tk.Seat == "aisle" })
	cheap := New[ticket](func(tk ticket) bool { return tk.Price < 100 })

	cheapWindow := ticket{Seat: "window", Price: 80}
	dearAisle := ticket{Seat: "aisle", Price: 300}

	cases := []struct {
		name string
		spec Specification[ticket]
		in   ticket
		want bool
	}{
		{name: "and both", spec: And(window, cheap), in: cheapWindow, want: true},
		{name: "and one", spec: And(window, cheap), in: dearAisle, want: false},
		{name: "or one", spec: Or(window, cheap), in: cheapWindow, want: true},
		{name: "or none", spec: Or(window, cheap), in: dearAisle, want: false},
		{name: "not true", spec: Not(aisle), in: cheapWindow, want: true},
		{name: "not false", spec: Not(aisle), in: dearAisle, want: false},
		{name: "conjunction all", spec: Conjunction(window, cheap, Not(aisle)), in: cheapWindow, want: true},
		{name: "conjunction miss", spec: Conjunction(aisle, cheap), in: dearAisle, want: false},
		{name: "conjunction empty", spec: Conjunction[ticket](), in: dearAisle, want: true},
		{name: "disjunction hit", spec: Disjunction(window, cheap, aisle), in: dearAisle, want: true},
		{name: "disjunction miss", spec: Disjunction(window, cheap), in: dearAisle, want: false},
		{name: "disjunction empty", spec: Disjunction[ticket](), in: cheapWindow, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.spec.IsSatisfiedBy(c.in))
		})
	}
}

func TestFunc(t *testing.T) {
	var spec Specification[int] = Func[int](func(n int) bool { return n > 0 })
	assert.True(t, spec.IsSatisfiedBy(1))
	assert.False(t, spec.IsSatisfiedBy(0))
}
