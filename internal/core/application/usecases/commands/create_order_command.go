package commands

import (
	"errors"

	"registry/internal/core/domain/model/order"
	"registry/internal/pkg/errs"
	"registry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order for a user.
//
// Example:
//
//	item, _ := order.NewItem("p1", 2, 10)
//	cmd, err := NewCreateOrderCommand("u1", []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID string
	items  []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that userID is not empty and that at least one item is given.
// Both failures are errs.ValueIsRequiredError.
func NewCreateOrderCommand(userID string, items []order.Item) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

// Items returns a copy of the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
