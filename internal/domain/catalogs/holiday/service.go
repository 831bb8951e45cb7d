package holiday

import (
	"context"
	"fmt"

	"maree/internal/core/id"
	"maree/pkg/logger"
)

// Service provides business logic for the holiday calendar.
type Service struct {
	repo Repository
}

// NewService creates a new holiday service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new holiday.
func (s *Service) Create(ctx context.Context, h *Holiday) error {
	if err := h.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}

	logger.Info(ctx, "holiday created",
		"holiday_id", h.ID,
		"name", h.Name,
		"start", h.StartDate.Format("2006-01-02"),
	)
	return nil
}

// Get retrieves a holiday by ID.
func (s *Service) Get(ctx context.Context, holidayID id.ID) (*Holiday, error) {
	return s.repo.GetByID(ctx, holidayID)
}

// Update validates and stores holiday changes.
func (s *Service) Update(ctx context.Context, h *Holiday) error {
	if err := h.Validate(ctx); err != nil {
		return err
	}

	h.Touch()
	if err := s.repo.Update(ctx, h); err != nil {
		return fmt.Errorf("update holiday: %w", err)
	}
	return nil
}

// Delete removes a holiday.
func (s *Service) Delete(ctx context.Context, holidayID id.ID) error {
	if err := s.repo.Delete(ctx, holidayID); err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	return nil
}

// List retrieves holidays ordered by start date.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Holiday, error) {
	return s.repo.List(ctx, activeOnly)
}
