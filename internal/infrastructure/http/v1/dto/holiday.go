package dto

import (
	"time"

	"maree/internal/core/apperror"
	"maree/internal/domain/catalogs/holiday"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return t, nil
}

// --- Request DTOs ---

// CreateHolidayRequest is the request body for creating a holiday.
type CreateHolidayRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateHolidayRequest) ToEntity() (*holiday.Holiday, error) {
	start, err := ParseDate("startDate", r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate("endDate", r.EndDate)
	if err != nil {
		return nil, err
	}
	return holiday.New(r.Name, start, end), nil
}

// UpdateHolidayRequest is the request body for updating a holiday.
type UpdateHolidayRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Active    bool   `json:"active"`
	Version   int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateHolidayRequest) ApplyTo(h *holiday.Holiday) error {
	start, err := ParseDate("startDate", r.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseDate("endDate", r.EndDate)
	if err != nil {
		return err
	}
	h.Name = r.Name
	h.StartDate = start
	h.EndDate = end
	h.Active = r.Active
	h.SetVersion(r.Version)
	return nil
}

// --- Response DTOs ---

// HolidayResponse is the response body for a holiday.
type HolidayResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Active    bool      `json:"active"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromHoliday creates response DTO from domain entity.
func FromHoliday(h *holiday.Holiday) *HolidayResponse {
	return &HolidayResponse{
		ID:        h.ID.String(),
		Name:      h.Name,
		StartDate: h.StartDate.Format(DateLayout),
		EndDate:   h.EndDate.Format(DateLayout),
		Active:    h.Active,
		Version:   h.Version,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromHolidays maps a slice of holidays to response DTOs.
func FromHolidays(items []*holiday.Holiday) []*HolidayResponse {
	out := make([]*HolidayResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromHoliday(h))
	}
	return out
}
