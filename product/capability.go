package product

// Located is anything that has a Location.
type Located interface {
	Location() Location
	SetLocation(location Location)
}

// Priced is anything that has a PriceRange.
type Priced interface {
	PriceRange() PriceRange
	SetPriceRange(priceRange PriceRange)
}
