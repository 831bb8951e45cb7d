package dto

import (
	"time"

	"maree/internal/core/types"
	"maree/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"min=0"`
	SoldByWeight bool    `json:"soldByWeight"`
	ImageURL     *string `json:"imageUrl"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.New(r.Name, types.NewMoney(r.Price), r.SoldByWeight)
	p.Description = r.Description
	p.ImageURL = r.ImageURL
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"min=0"`
	SoldByWeight bool    `json:"soldByWeight"`
	ImageURL     *string `json:"imageUrl"`
	Active       bool    `json:"active"`
	Version      int     `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Name = r.Name
	p.Description = r.Description
	p.Price = types.NewMoney(r.Price)
	p.SoldByWeight = r.SoldByWeight
	p.ImageURL = r.ImageURL
	p.Active = r.Active
	p.SetVersion(r.Version)
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	SoldByWeight bool      `json:"soldByWeight"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Active       bool      `json:"active"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price.StringFixed(2),
		SoldByWeight: p.SoldByWeight,
		ImageURL:     p.ImageURL,
		Active:       p.Active,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromProducts maps a slice of products to response DTOs.
func FromProducts(items []*product.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}
