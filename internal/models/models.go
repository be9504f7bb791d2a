package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProduct = errors.New("unknown product")

type ProductKind string

const (
	ProductPizza     ProductKind = "pizza"
	ProductSpaghetti ProductKind = "spaghetti"
	ProductBurger    ProductKind = "burger"
)

// AllProducts returns every kind on the menu in declaration order.
func AllProducts() []ProductKind {
	return []ProductKind{ProductPizza, ProductSpaghetti, ProductBurger}
}

func ParseProductKind(s string) (ProductKind, error) {
	kind := ProductKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProduct, s)
	}
	return kind, nil
}

func (k ProductKind) Valid() bool {
	switch k {
	case ProductPizza, ProductSpaghetti, ProductBurger:
		return true
	}
	return false
}

func (k ProductKind) String() string {
	switch k {
	case ProductPizza:
		return "Pizza"
	case ProductSpaghetti:
		return "Spaghetti"
	case ProductBurger:
		return "Burger"
	}
	return string(k)
}

// Receipt is the record of a paid order.
type Receipt struct {
	Kind  ProductKind `json:"product"`
	Price int         `json:"price"`
}
