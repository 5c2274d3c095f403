package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImagesFiltersAndPreservesSlotOrder(t *testing.T) {
	p := Product{Image1: " https://img/1.jpg ", Image2: "", Image3: "https://img/3.jpg"}

	assert.Equal(t, []string{"https://img/1.jpg", "https://img/3.jpg"}, p.Images())
}

func TestOptionSplitting(t *testing.T) {
	p := Product{Colors: "Red, Blue ,", Sizes: ""}

	assert.Equal(t, []string{"Red", "Blue"}, p.ColorOptions())
	assert.Empty(t, p.SizeOptions())
}

func TestProductIDIsContentDerived(t *testing.T) {
	a := ProductID("Silk Square", "Premium")
	b := ProductID("Silk Square", "Premium")
	c := ProductID("Silk Square", "Basic")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestCartTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Price: 49.9, Quantity: 2},
		{Price: 10, Quantity: 1},
	}}

	assert.InDelta(t, 109.8, cart.Total(), 1e-9)
	assert.InDelta(t, 99.8, cart.Items[0].Subtotal(), 1e-9)
}
