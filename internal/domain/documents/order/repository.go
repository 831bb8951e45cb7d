package order

import (
	"context"
	"time"

	"maree/internal/core/id"
)

// Repository defines persistence operations for orders.
type Repository interface {
	// Create inserts the order with its lines.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order with lines.
	GetByID(ctx context.Context, orderID id.ID) (*Order, error)

	// Update replaces the order and its lines (optimistic locking on version).
	Update(ctx context.Context, o *Order) error

	// Delete removes the order and its lines.
	Delete(ctx context.Context, orderID id.ID) error

	// List retrieves orders matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]*Order, error)

	// FindByDeliveryWindow retrieves orders whose delivery date falls in
	// [from, to] inclusive, optionally restricted to holiday orders.
	// Lines are loaded for every returned order.
	FindByDeliveryWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*Order, error)
}

// ListFilter narrows order listings.
type ListFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	HolidayOnly bool
	Search      string // matches customer name
	Limit       int
	Offset      int
}
