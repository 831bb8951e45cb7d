package holiday

import (
	"context"

	"maree/internal/core/id"
)

// Repository defines persistence operations for the holiday calendar.
type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, holidayID id.ID) (*Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, holidayID id.ID) error

	// List retrieves holidays ordered by start date ascending.
	List(ctx context.Context, activeOnly bool) ([]*Holiday, error)
}
