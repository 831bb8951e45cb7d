// Package product provides the product catalog.
package product

import (
	"context"
	"strings"

	"maree/internal/core/apperror"
	"maree/internal/core/entity"
	"maree/internal/core/types"
)

// Product represents a catalog item sold in the shop.
//
// Whether a product is sold by weight or by piece is decided by the
// static rule tables in the units package, keyed by name; SoldByWeight
// here is a display hint for the storefront and never feeds the
// reconciliation engine.
type Product struct {
	entity.Base

	// Name is unique within the catalog (case-insensitive)
	Name string `db:"name" json:"name"`

	Description string `db:"description" json:"description,omitempty"`

	// Price per kg for weight-sold products, per piece otherwise
	Price types.Money `db:"price" json:"price"`

	SoldByWeight bool `db:"sold_by_weight" json:"soldByWeight"`

	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`

	// Active products participate in reconciliation; inactive ones are
	// excluded even when demand exists.
	Active bool `db:"active" json:"active"`
}

// New creates a new active product.
func New(name string, price types.Money, soldByWeight bool) *Product {
	return &Product{
		Base:         entity.NewBase(),
		Name:         name,
		Price:        price,
		SoldByWeight: soldByWeight,
		Active:       true,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}

	return nil
}
