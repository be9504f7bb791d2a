package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ProductKind
		wantErr bool
	}{
		{"pizza", ProductPizza, false},
		{" Spaghetti ", ProductSpaghetti, false},
		{"BURGER", ProductBurger, false},
		{"sushi", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProductKind(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownProduct, "ParseProductKind(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseProductKind(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestProductKind_String(t *testing.T) {
	assert.Equal(t, "Pizza", ProductPizza.String())
	assert.Equal(t, "Spaghetti", ProductSpaghetti.String())
	assert.Equal(t, "Burger", ProductBurger.String())
	assert.Equal(t, "sushi", ProductKind("sushi").String())
}

func TestAllProducts(t *testing.T) {
	all := AllProducts()
	assert.Equal(t, []ProductKind{ProductPizza, ProductSpaghetti, ProductBurger}, all)
	for _, k := range all {
		assert.True(t, k.Valid())
	}
	assert.False(t, ProductKind("sushi").Valid())
}
