package main

import (
	"fmt"

	"github.com/go-leo/design-pattern-filter/product"
	"github.com/go-leo/design-pattern-filter/specification"
)

func main() {
	mediumPriceProducts, laLocatedProducts := filterSamples()
	fmt.Println(mediumPriceProducts)
	fmt.Println(laLocatedProducts)
}

func filterSamples() (mediumPriceProducts, laLocatedProducts []*product.Product) {
	restaurant1 := product.New("Restaurant 1", product.LocationNY, product.PriceRangeHigh)
	hotel1 := product.New("Hotel 1", product.LocationLA, product.PriceRangeMedium)
	restaurant2 := product.New("Restaurant 2", product.LocationLA, product.PriceRangeHigh)
	hotel2 := product.New("Hotel 2", product.LocationCH, product.PriceRangeLow)
	products := []*product.Product{restaurant1, restaurant2, hotel1, hotel2}

	mediumPriceSpec := product.PriceRangeSpec[*product.Product]{PriceRange: product.PriceRangeMedium}
	laLocationSpec := product.LocationSpec[*product.Product]{Location: product.LocationLA}

	mediumPriceProducts = specification.Filter[*product.Product](products, mediumPriceSpec)
	laLocatedProducts = specification.Filter[*product.Product](products, laLocationSpec)
	return mediumPriceProducts, laLocatedProducts
}
