// Package order provides the customer order document.
// An order records what a customer asked for and when it is delivered;
// line quantities are captured in the product's native unit at
// order-placement time (kg for weight-sold fish, piece count otherwise).
package order

import (
	"context"
	"strings"
	"time"

	"maree/internal/core/apperror"
	"maree/internal/core/entity"
	"maree/internal/core/id"
	"maree/internal/core/types"
)

// Order represents a customer order.
type Order struct {
	entity.Base

	// Number is the order number (generated at creation)
	Number string `db:"number" json:"number"`

	CustomerName  string `db:"customer_name" json:"customerName"`
	CustomerPhone string `db:"customer_phone" json:"customerPhone,omitempty"`
	CustomerEmail string `db:"customer_email" json:"customerEmail,omitempty"`

	// DeliveryDate is the date the customer picks up or receives the order.
	// Holiday demand aggregation windows filter on this date.
	DeliveryDate time.Time `db:"delivery_date" json:"deliveryDate"`

	// IsHolidayOrder marks orders placed against a holiday event
	IsHolidayOrder bool `db:"is_holiday_order" json:"isHolidayOrder"`

	Comment string `db:"comment" json:"comment,omitempty"`

	// TotalAmount is calculated from lines
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// Table part: ordered items
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a single order line.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductName string `db:"product_name" json:"productName"`

	// Quantity is in the product's native unit: kg when UnitBased is
	// false, whole pieces when true.
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	UnitBased bool           `db:"unit_based" json:"unitBased"`

	// SizeTag selects the average-weight bucket for size-graded fish
	// (S/M/L); empty when the product is not size-graded.
	SizeTag string `db:"size_tag" json:"sizeTag,omitempty"`

	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
	Amount    types.Money `db:"amount" json:"amount"`
}

// New creates a new order for a customer.
func New(customerName string, deliveryDate time.Time) *Order {
	return &Order{
		Base:         entity.NewBase(),
		CustomerName: customerName,
		DeliveryDate: deliveryDate,
		Lines:        make([]Line, 0),
	}
}

// AddLine adds a line and recalculates totals.
func (o *Order) AddLine(productName string, qty types.Quantity, unitBased bool, sizeTag string, unitPrice types.Money) {
	line := Line{
		LineID:      id.New(),
		LineNo:      len(o.Lines) + 1,
		ProductName: productName,
		Quantity:    qty,
		UnitBased:   unitBased,
		SizeTag:     sizeTag,
		UnitPrice:   unitPrice,
		Amount:      unitPrice.Mul(types.NewMoney(qty.Float64())),
	}
	o.Lines = append(o.Lines, line)
	o.recalculateTotals()
}

func (o *Order) recalculateTotals() {
	var total types.Money
	for _, line := range o.Lines {
		total = total.Add(line.Amount)
	}
	o.TotalAmount = total
}

// Validate implements entity.Validatable.
func (o *Order) Validate(ctx context.Context) error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}

	if o.DeliveryDate.IsZero() {
		return apperror.NewValidation("delivery date is required").
			WithDetail("field", "deliveryDate")
	}

	if len(o.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range o.Lines {
		if strings.TrimSpace(line.ProductName) == "" {
			return apperror.NewValidation("product name is required").
				WithDetail("line", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("line", i+1).
				WithDetail("quantity", line.Quantity.String())
		}
	}

	return nil
}
