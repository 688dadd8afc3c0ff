package order

import (
	"registry/internal/pkg/errs"
)

// Item is a line of an order: a product reference with a quantity and a unit price.
// It has no identity of its own and is copied into the order by value.
//
// Quantity and price are taken as given. Neither is required to be positive.
type Item struct {
	productID string
	quantity  int
	price     float64
}

// NewItem creates an order line. The product identifier must not be empty.
func NewItem(productID string, quantity int, price float64) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("productId")
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		price:     price,
	}, nil
}

// ProductID returns the referenced product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

// Total returns Σ(price × quantity) over items using plain float64 arithmetic.
// No rounding is applied and an empty slice totals to 0.
func Total(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
