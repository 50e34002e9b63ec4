package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/models"
)

// PricingInput holds everything needed to price an order
type PricingInput struct {
	UnitPrice      decimal.Decimal
	Quantity       int
	DeliveryCharge decimal.Decimal
	LaborCharge    decimal.Decimal
	TaxRate        decimal.Decimal // fraction, e.g. 0.18
}

// PricingBreakdown is the full invoice-level result of pricing an order
type PricingBreakdown struct {
	Items       []models.InvoiceItem
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// ComputeTotal prices an order:
//
//	subtotal = unitPrice*quantity + deliveryCharge + laborCharge
//	total    = subtotal * (1 + taxRate)
//
// A non-positive unit price or quantity always returns
// ErrInvalidPricingInput rather than a zero or negative total.
func ComputeTotal(in PricingInput) (decimal.Decimal, error) {
	breakdown, err := ComputeBreakdown("Bricks", in)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.TotalAmount, nil
}

// ComputeBreakdown prices an order and returns the invoice line items:
// the brick line, the delivery line and the labor line, plus subtotal,
// tax and total. brickType is only used for the line description.
func ComputeBreakdown(brickType string, in PricingInput) (*PricingBreakdown, error) {
	if in.Quantity <= 0 || in.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPricingInput
	}

	quantity := decimal.NewFromInt(int64(in.Quantity))
	brickAmount := in.UnitPrice.Mul(quantity)
	subtotal := brickAmount.Add(in.DeliveryCharge).Add(in.LaborCharge)
	taxAmount := subtotal.Mul(in.TaxRate).Round(2)
	totalAmount := subtotal.Add(taxAmount)

	items := []models.InvoiceItem{
		{
			Description: fmt.Sprintf("%s (Standard Size)", brickType),
			Quantity:    in.Quantity,
			Rate:        in.UnitPrice,
			Amount:      brickAmount,
		},
		{
			Description: "Delivery Charges",
			Quantity:    1,
			Rate:        in.DeliveryCharge,
			Amount:      in.DeliveryCharge,
		},
		{
			Description: "Labor Charges",
			Quantity:    1,
			Rate:        in.LaborCharge,
			Amount:      in.LaborCharge,
		},
	}

	return &PricingBreakdown{
		Items:       items,
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
	}, nil
}
