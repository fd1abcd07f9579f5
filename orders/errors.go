package orders

import (
	"errors"
	"fmt"

	"backoffice/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// ProductNotFoundError is returned when an operation references a product
// id that does not exist (or has been deleted).
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InsufficientStockError is returned when a reservation asks for more units
// than the product has available. Stock is left unchanged.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %q: requested %d, available %d",
		e.Name, e.Requested, e.Available)
}

// InvalidTransitionError is returned for an illegal status change, and for
// any mutation (item change, deletion) attempted outside the pending state.
// Requested is empty when the failure came from a pending-only guard.
type InvalidTransitionError struct {
	Current   models.OrderStatus
	Requested models.OrderStatus
	Op        string
}

func (e *InvalidTransitionError) Error() string {
	if e.Requested != "" {
		return fmt.Sprintf("invalid status transition from %q to %q", e.Current, e.Requested)
	}
	return fmt.Sprintf("%s is only allowed while the order is pending (current status %q)", e.Op, e.Current)
}

// ItemNotInOrderError is returned when the referenced item does not belong
// to the order being mutated.
type ItemNotInOrderError struct {
	OrderID uint
	ItemID  uint
}

func (e *ItemNotInOrderError) Error() string {
	return fmt.Sprintf("item %d does not belong to order %d", e.ItemID, e.OrderID)
}
