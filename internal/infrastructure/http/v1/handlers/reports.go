package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"maree/internal/core/apperror"
	"maree/internal/core/id"
	"maree/internal/domain/catalogs/holiday"
	"maree/internal/domain/notify"
	"maree/internal/infrastructure/http/v1/dto"
	"maree/internal/infrastructure/storage/postgres"
)

// ReportsHandler handles holiday demand report endpoints.
type ReportsHandler struct {
	*BaseHandler
	holidays *holiday.Service
	runner   *notify.Runner
	archive  *postgres.ReportArchive
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, holidays *holiday.Service, runner *notify.Runner, archive *postgres.ReportArchive) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		holidays:    holidays,
		runner:      runner,
		archive:     archive,
	}
}

// RegisterRoutes registers report routes on the given group.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/holiday-demand", h.HolidayDemand)
	rg.POST("/holiday-demand/run", h.Run)
	rg.POST("/holiday-demand/:holidayId/deliver", h.Deliver)
	rg.GET("/holiday-demand/:holidayId/archive", h.Archived)
}

// HolidayDemand handles GET /reports/holiday-demand?holidayId=...
// Computes the demand report on the fly without delivering it.
func (h *ReportsHandler) HolidayDemand(c *gin.Context) {
	holidayID := c.Query("holidayId")
	if holidayID == "" {
		h.Error(c, apperror.NewValidation("holidayId query parameter is required"))
		return
	}

	parsed, err := id.Parse(holidayID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid holidayId").WithDetail("value", holidayID))
		return
	}

	entity, err := h.holidays.Get(c.Request.Context(), parsed)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.runner.ComputeReport(c.Request.Context(), entity)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromReport(report))
}

// Run handles POST /reports/holiday-demand/run.
// Scans the calendar and processes every holiday due within the
// lookahead window, delivering reports to all configured channels.
func (h *ReportsHandler) Run(c *gin.Context) {
	results, err := h.runner.Run(c.Request.Context(), time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items: dto.FromRunResults(results),
		Count: len(results),
	})
}

// Deliver handles POST /reports/holiday-demand/:holidayId/deliver.
// Processes one holiday regardless of the trigger window.
func (h *ReportsHandler) Deliver(c *gin.Context) {
	holidayID, ok := h.ParseID(c, "holidayId")
	if !ok {
		return
	}

	entity, err := h.holidays.Get(c.Request.Context(), holidayID)
	if err != nil {
		h.Error(c, err)
		return
	}

	result := h.runner.ProcessOne(c.Request.Context(), entity)
	if result.Err != nil {
		h.Error(c, apperror.NewInternal(result.Err))
		return
	}

	h.OK(c, dto.FromRunResults([]notify.RunResult{result})[0])
}

// Archived handles GET /reports/holiday-demand/:holidayId/archive.
// Returns previously delivered reports from the archive.
func (h *ReportsHandler) Archived(c *gin.Context) {
	holidayID, ok := h.ParseID(c, "holidayId")
	if !ok {
		return
	}

	limit := h.ParseIntQuery(c, "limit", 20)

	reports, err := h.archive.GetByHoliday(c.Request.Context(), holidayID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse{
		Items: reports,
		Count: len(reports),
		Limit: limit,
	})
}
