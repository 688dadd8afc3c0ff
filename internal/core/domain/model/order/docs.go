// Package order provides the Order aggregate of the order registry.
//
// The package includes:
//   - Order: the aggregate root holding owner, items, status, total and timestamps
//   - Item: an order line (product, quantity, unit price)
//   - Status: the enumerated status label with parsing and validation
//   - Total: the pure price × quantity summation used at creation
//
// Key business rules:
//   - Orders need an owner and at least one item
//   - The total is computed once, when the order is created
//   - New orders are pending; any valid status may replace any other
package order
