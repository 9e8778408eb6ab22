package product

import (
	"fmt"

	"github.com/go-leo/design-pattern-filter/ddd"
	jsoniter "github.com/json-iterator/go"
)

var (
	_ Located = (*Product)(nil)
	_ Priced  = (*Product)(nil)

	_ ddd.ValueObject[*Product] = (*Product)(nil)
)

// Product is something on offer somewhere, at some price.
type Product struct {
	name       string
	location   Location
	priceRange PriceRange
}

func New(name string, location Location, priceRange PriceRange) *Product {
	return &Product{name: name, location: location, priceRange: priceRange}
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Location() Location {
	return p.location
}

func (p *Product) SetLocation(location Location) {
	p.location = location
}

func (p *Product) PriceRange() PriceRange {
	return p.priceRange
}

func (p *Product) SetPriceRange(priceRange PriceRange) {
	p.priceRange = priceRange
}

// SameValueAs reports whether both products carry the same name, location and price range.
// Two nil products are the same value.
func (p *Product) SameValueAs(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// String renders the product by its name.
func (p *Product) String() string {
	return p.name
}

type productJSON struct {
	Name       string      `json:"name"`
	Location   *Location   `json:"location"`
	PriceRange *PriceRange `json:"priceRange"`
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(productJSON{Name: p.name, Location: &p.location, PriceRange: &p.priceRange})
}

// UnmarshalJSON fails with ErrMissingField when location or priceRange is absent or null.
func (p *Product) UnmarshalJSON(data []byte) error {
	var v productJSON
	if err := jsoniter.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Location == nil {
		return fmt.Errorf("%w: location", ErrMissingField)
	}
	if v.PriceRange == nil {
		return fmt.Errorf("%w: priceRange", ErrMissingField)
	}
	p.name, p.location, p.priceRange = v.Name, *v.Location, *v.PriceRange
	return nil
}
