// Package orderrepo provides the in-memory Order Store. Orders are held as
// plain records and converted to and from the domain aggregate on every call,
// so no caller ever shares memory with the store.
package orderrepo

import (
	"time"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/order"
)

// orderRecord is the stored representation of an order aggregate.
type orderRecord struct {
	ID        kernel.UUID
	UserID    string
	Items     []itemRecord
	Status    order.Status
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// itemRecord is the stored representation of an order line.
type itemRecord struct {
	ProductID string
	Quantity  int
	Price     float64
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(o *order.Order) orderRecord {
	items := o.Items()
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		}
	}

	return orderRecord{
		ID:        o.ID(),
		UserID:    o.UserID(),
		Items:     records,
		Status:    o.Status(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate, keeping the stored total.
func toDomain(r orderRecord) (*order.Order, error) {
	items := make([]order.Item, len(r.Items))
	for i, rec := range r.Items {
		item, err := order.NewItem(rec.ProductID, rec.Quantity, rec.Price)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return order.RestoreOrder(r.ID, r.UserID, items, r.Status, r.Total, r.CreatedAt, r.UpdatedAt)
}
