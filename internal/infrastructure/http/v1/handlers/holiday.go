package handlers

import (
	"github.com/gin-gonic/gin"

	"maree/internal/domain/catalogs/holiday"
	"maree/internal/infrastructure/http/v1/dto"
)

// HolidayHandler handles holiday calendar endpoints.
type HolidayHandler struct {
	*BaseHandler
	service *holiday.Service
}

// NewHolidayHandler creates a new holiday handler.
func NewHolidayHandler(base *BaseHandler, service *holiday.Service) *HolidayHandler {
	return &HolidayHandler{BaseHandler: base, service: service}
}

// RegisterRoutes registers holiday routes on the given groups.
func (h *HolidayHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("", h.List)
	public.GET("/:id", h.Get)

	protected.POST("", h.Create)
	protected.PUT("/:id", h.Update)
	protected.DELETE("/:id", h.Delete)
}

// Create handles POST /holidays.
func (h *HolidayHandler) Create(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, entity.ID)
}

// Get handles GET /holidays/:id.
func (h *HolidayHandler) Get(c *gin.Context) {
	holidayID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), holidayID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromHoliday(entity))
}

// Update handles PUT /holidays/:id.
func (h *HolidayHandler) Update(c *gin.Context) {
	holidayID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), holidayID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(entity); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromHoliday(entity))
}

// Delete handles DELETE /holidays/:id.
func (h *HolidayHandler) Delete(c *gin.Context) {
	holidayID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), holidayID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET /holidays.
func (h *HolidayHandler) List(c *gin.Context) {
	activeOnly := h.ParseBoolQuery(c, "activeOnly", false)

	items, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items: dto.FromHolidays(items),
		Count: len(items),
	})
}
