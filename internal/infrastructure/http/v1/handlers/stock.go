package handlers

import (
	"github.com/gin-gonic/gin"

	"maree/internal/core/types"
	"maree/internal/domain/registers/stock"
	"maree/internal/infrastructure/http/v1/dto"
)

// StockHandler handles stock register endpoints.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers stock routes on the given group.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PUT("", h.Set)
	rg.POST("/adjust", h.Adjust)
}

// Set handles PUT /stock.
// Replaces the available weight for one product.
func (h *StockHandler) Set(c *gin.Context) {
	var req dto.SetStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	weight := types.NewQuantityFromFloat64(req.WeightKg)
	if err := h.service.SetAvailability(c.Request.Context(), req.ProductName, weight, req.Active); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "stock updated")
}

// Adjust handles POST /stock/adjust.
// Applies a signed delta; fails when the result would go negative.
func (h *StockHandler) Adjust(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	delta := types.NewQuantityFromFloat64(req.DeltaKg)
	balance, err := h.service.Adjust(c.Request.Context(), req.ProductName, delta)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBalance(balance))
}

// List handles GET /stock.
func (h *StockHandler) List(c *gin.Context) {
	excludeZero := h.ParseBoolQuery(c, "excludeZero", false)

	items, err := h.service.List(c.Request.Context(), excludeZero)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items: dto.FromBalances(items),
		Count: len(items),
	})
}
