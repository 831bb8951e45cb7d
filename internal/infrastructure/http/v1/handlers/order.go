package handlers

import (
	"github.com/gin-gonic/gin"

	"maree/internal/domain/documents/order"
	"maree/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles customer order endpoints.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers order routes. Placing an order is open to
// storefront customers; management endpoints require a token.
func (h *OrderHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("", h.Create)

	protected.GET("", h.List)
	protected.GET("/:id", h.Get)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	o, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), o); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(o))
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(o))
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Get(c.Request.Context(), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(o); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), o); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrder(o))
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), orderID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET /orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter := order.ListFilter{
		HolidayOnly: h.ParseBoolQuery(c, "holidayOnly", false),
		Search:      c.Query("search"),
		Limit:       h.ParseIntQuery(c, "limit", 50),
		Offset:      h.ParseIntQuery(c, "offset", 0),
	}

	if from := c.Query("from"); from != "" {
		t, err := dto.ParseDate("from", from)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.FromDate = &t
	}

	if to := c.Query("to"); to != "" {
		t, err := dto.ParseDate("to", to)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.ToDate = &t
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items:  dto.FromOrders(items),
		Count:  len(items),
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}