// Package holiday provides the holiday calendar catalog.
// A holiday defines the demand-aggregation window for orders delivered
// in [StartDate, EndDate], both inclusive.
package holiday

import (
	"context"
	"strings"
	"time"

	"maree/internal/core/apperror"
	"maree/internal/core/entity"
)

// Holiday represents one calendar event (Christmas, Easter, ...).
type Holiday struct {
	entity.Base

	Name string `db:"name" json:"name"`

	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	// Active holidays are considered by the scheduling trigger.
	Active bool `db:"active" json:"active"`
}

// New creates a new active holiday.
func New(name string, startDate, endDate time.Time) *Holiday {
	return &Holiday{
		Base:      entity.NewBase(),
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Active:    true,
	}
}

// Validate implements entity.Validatable.
func (h *Holiday) Validate(ctx context.Context) error {
	if strings.TrimSpace(h.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if h.StartDate.IsZero() || h.EndDate.IsZero() {
		return apperror.NewValidation("start and end dates are required")
	}

	if h.EndDate.Before(h.StartDate) {
		return apperror.NewValidation("end date must not be before start date").
			WithDetail("startDate", h.StartDate).
			WithDetail("endDate", h.EndDate)
	}

	return nil
}
