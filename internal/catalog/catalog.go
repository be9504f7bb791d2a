// Package catalog holds the fixed menu price table.
package catalog

import (
	"fmt"

	"github.com/JinFuuMugen/foodorder/internal/models"
)

const (
	PricePizza     = 350
	PriceSpaghetti = 300
	PriceBurger    = 280
)

// PriceFunc looks up the price of a product kind.
type PriceFunc func(kind models.ProductKind) int

// PriceOf returns the menu price of kind. It panics on a kind without a price,
// which can only happen if the enumeration grows and this table does not.
func PriceOf(kind models.ProductKind) int {
	switch kind {
	case models.ProductPizza:
		return PricePizza
	case models.ProductSpaghetti:
		return PriceSpaghetti
	case models.ProductBurger:
		return PriceBurger
	default:
		panic(fmt.Sprintf("catalog: no price for product %q", string(kind)))
	}
}
