package product

import "fmt"

// Location is the city a product is offered in.
type Location int

const (
	LocationNY Location = iota
	LocationLA
	LocationCH
)

// Name returns the display name of the location.
func (l Location) Name() string {
	switch l {
	case LocationNY:
		return "New York"
	case LocationLA:
		return "Los Angeles"
	case LocationCH:
		return "Chicago"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

func (l Location) String() string {
	return l.Name()
}

func (l Location) MarshalText() ([]byte, error) {
	switch l {
	case LocationNY:
		return []byte("ny"), nil
	case LocationLA:
		return []byte("la"), nil
	case LocationCH:
		return []byte("ch"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownLocation, int(l))
}

func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLocation converts a short code such as "la" into a Location.
func ParseLocation(code string) (Location, error) {
	switch code {
	case "ny":
		return LocationNY, nil
	case "la":
		return LocationLA, nil
	case "ch":
		return LocationCH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, code)
}
