package dto

import (
	"time"

	"maree/internal/core/types"
	"maree/internal/domain/documents/order"
)

// --- Request DTOs ---

// OrderLineRequest is one order line in a create/update request.
// Quantity is in the product's native unit: kg when unitBased is
// false, whole pieces when true.
type OrderLineRequest struct {
	ProductName string  `json:"productName" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitBased   bool    `json:"unitBased"`
	SizeTag     string  `json:"sizeTag"`
	UnitPrice   float64 `json:"unitPrice" binding:"min=0"`
}

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	CustomerName   string             `json:"customerName" binding:"required"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerEmail  string             `json:"customerEmail"`
	DeliveryDate   string             `json:"deliveryDate" binding:"required"`
	IsHolidayOrder bool               `json:"isHolidayOrder"`
	Comment        string             `json:"comment"`
	Lines          []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderRequest) ToEntity() (*order.Order, error) {
	deliveryDate, err := ParseDate("deliveryDate", r.DeliveryDate)
	if err != nil {
		return nil, err
	}

	o := order.New(r.CustomerName, deliveryDate)
	o.CustomerPhone = r.CustomerPhone
	o.CustomerEmail = r.CustomerEmail
	o.IsHolidayOrder = r.IsHolidayOrder
	o.Comment = r.Comment

	for _, line := range r.Lines {
		o.AddLine(
			line.ProductName,
			types.NewQuantityFromFloat64(line.Quantity),
			line.UnitBased,
			line.SizeTag,
			types.NewMoney(line.UnitPrice),
		)
	}
	return o, nil
}

// UpdateOrderRequest is the request body for updating an order.
// Lines replace the existing table part entirely.
type UpdateOrderRequest struct {
	CustomerName   string             `json:"customerName" binding:"required"`
	CustomerPhone  string             `json:"customerPhone"`
	CustomerEmail  string             `json:"customerEmail"`
	DeliveryDate   string             `json:"deliveryDate" binding:"required"`
	IsHolidayOrder bool               `json:"isHolidayOrder"`
	Comment        string             `json:"comment"`
	Lines          []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
	Version        int                `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrderRequest) ApplyTo(o *order.Order) error {
	deliveryDate, err := ParseDate("deliveryDate", r.DeliveryDate)
	if err != nil {
		return err
	}

	o.CustomerName = r.CustomerName
	o.CustomerPhone = r.CustomerPhone
	o.CustomerEmail = r.CustomerEmail
	o.DeliveryDate = deliveryDate
	o.IsHolidayOrder = r.IsHolidayOrder
	o.Comment = r.Comment
	o.SetVersion(r.Version)

	o.Lines = o.Lines[:0]
	for _, line := range r.Lines {
		o.AddLine(
			line.ProductName,
			types.NewQuantityFromFloat64(line.Quantity),
			line.UnitBased,
			line.SizeTag,
			types.NewMoney(line.UnitPrice),
		)
	}
	return nil
}

// --- Response DTOs ---

// OrderLineResponse is one order line in a response.
type OrderLineResponse struct {
	LineID      string `json:"lineId"`
	LineNo      int    `json:"lineNo"`
	ProductName string `json:"productName"`
	Quantity    string `json:"quantity"`
	UnitBased   bool   `json:"unitBased"`
	SizeTag     string `json:"sizeTag,omitempty"`
	UnitPrice   string `json:"unitPrice"`
	Amount      string `json:"amount"`
}

// OrderResponse is the response body for an order.
type OrderResponse struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	CustomerName   string              `json:"customerName"`
	CustomerPhone  string              `json:"customerPhone,omitempty"`
	CustomerEmail  string              `json:"customerEmail,omitempty"`
	DeliveryDate   string              `json:"deliveryDate"`
	IsHolidayOrder bool                `json:"isHolidayOrder"`
	Comment        string              `json:"comment,omitempty"`
	TotalAmount    string              `json:"totalAmount"`
	Lines          []OrderLineResponse `json:"lines"`
	Version        int                 `json:"version"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// FromOrder creates response DTO from domain entity.
func FromOrder(o *order.Order) *OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			LineID:      line.LineID.String(),
			LineNo:      line.LineNo,
			ProductName: line.ProductName,
			Quantity:    line.Quantity.String(),
			UnitBased:   line.UnitBased,
			SizeTag:     line.SizeTag,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Amount:      line.Amount.StringFixed(2),
		})
	}

	return &OrderResponse{
		ID:             o.ID.String(),
		Number:         o.Number,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		CustomerEmail:  o.CustomerEmail,
		DeliveryDate:   o.DeliveryDate.Format(DateLayout),
		IsHolidayOrder: o.IsHolidayOrder,
		Comment:        o.Comment,
		TotalAmount:    o.TotalAmount.StringFixed(2),
		Lines:          lines,
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// FromOrders maps a slice of orders to response DTOs.
func FromOrders(items []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromOrder(o))
	}
	return out
}
