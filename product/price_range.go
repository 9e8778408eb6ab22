package product

import "fmt"

type PriceRange int

const (
	PriceRangeLow PriceRange = iota
	PriceRangeMedium
	PriceRangeHigh
)

func (p PriceRange) String() string {
	text, err := p.MarshalText()
	if err != nil {
		return fmt.Sprintf("PriceRange(%d)", int(p))
	}
	return string(text)
}

func (p PriceRange) MarshalText() ([]byte, error) {
	switch p {
	case PriceRangeLow:
		return []byte("low"), nil
	case PriceRangeMedium:
		return []byte("medium"), nil
	case PriceRangeHigh:
		return []byte("high"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPriceRange, int(p))
}

func (p *PriceRange) UnmarshalText(text []byte) error {
	parsed, err := ParsePriceRange(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriceRange converts "low", "medium" or "high" into a PriceRange.
func ParsePriceRange(code string) (PriceRange, error) {
	switch code {
	case "low":
		return PriceRangeLow, nil
	case "medium":
		return PriceRangeMedium, nil
	case "high":
		return PriceRangeHigh, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPriceRange, code)
}
