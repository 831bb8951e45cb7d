package order

import (
	"context"
	"fmt"
	"time"

	"maree/internal/core/apperror"
	"maree/internal/core/id"
	"maree/pkg/logger"
)

// Service provides business operations for customer orders.
type Service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new order.
func (s *Service) Create(ctx context.Context, o *Order) error {
	if err := o.Validate(ctx); err != nil {
		return err
	}

	if o.Number == "" {
		o.Number = generateNumber(o)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	logger.Info(ctx, "order created",
		"order_id", o.ID,
		"number", o.Number,
		"lines", len(o.Lines),
		"holiday", o.IsHolidayOrder,
	)

	return nil
}

// Get retrieves an order by ID.
func (s *Service) Get(ctx context.Context, orderID id.ID) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Update validates and stores order changes.
func (s *Service) Update(ctx context.Context, o *Order) error {
	if err := o.Validate(ctx); err != nil {
		return err
	}

	o.Touch()
	if err := s.repo.Update(ctx, o); err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	return nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, orderID id.ID) error {
	if err := s.repo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	logger.Info(ctx, "order deleted", "order_id", orderID)
	return nil
}

// List retrieves orders, newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	return s.repo.List(ctx, filter)
}

// FindForWindow retrieves orders for a demand-aggregation window.
func (s *Service) FindForWindow(ctx context.Context, from, to time.Time, holidayOnly bool) ([]*Order, error) {
	if from.After(to) {
		return nil, apperror.NewValidation("window start must not be after window end")
	}
	return s.repo.FindByDeliveryWindow(ctx, from, to, holidayOnly)
}

// generateNumber builds a human-readable order number from the delivery
// date and the time-ordered ID suffix.
func generateNumber(o *Order) string {
	return fmt.Sprintf("ORD-%s-%s",
		o.DeliveryDate.Format("20060102"),
		o.ID.String()[len(o.ID.String())-6:],
	)
}
