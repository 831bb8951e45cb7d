package dto

import (
	"time"

	"maree/internal/domain/registers/stock"
)

// --- Request DTOs ---

// SetStockRequest replaces the available weight for one product.
type SetStockRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	WeightKg    float64 `json:"weightKg" binding:"min=0"`
	Active      bool    `json:"active"`
}

// AdjustStockRequest applies a signed delta to the available weight.
type AdjustStockRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	DeltaKg     float64 `json:"deltaKg" binding:"required"`
}

// --- Response DTOs ---

// StockBalanceResponse is the response body for one stock balance.
type StockBalanceResponse struct {
	ProductName string    `json:"productName"`
	WeightKg    string    `json:"weightKg"`
	Active      bool      `json:"active"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromBalance creates response DTO from register balance.
func FromBalance(b stock.Balance) StockBalanceResponse {
	return StockBalanceResponse{
		ProductName: b.ProductName,
		WeightKg:    b.AvailableWeightKg.String(),
		Active:      b.Active,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromBalances maps a slice of balances to response DTOs.
func FromBalances(items []stock.Balance) []StockBalanceResponse {
	out := make([]StockBalanceResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBalance(b))
	}
	return out
}
