package product

import (
	"context"

	"maree/internal/core/id"
)

// Repository defines persistence operations for the product catalog.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, productID id.ID) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID id.ID) error

	// List retrieves products ordered by name.
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
}

// ListFilter narrows product listings.
type ListFilter struct {
	ActiveOnly bool
	Search     string
	Limit      int
	Offset     int
}
