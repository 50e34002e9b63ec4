package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/utils"
)

// OrderService orchestrates the order fulfillment workflow: order creation
// with its stock and transport side effects, invoice generation, and
// payment-status propagation.
type OrderService struct {
	db       *gorm.DB
	settings *SettingsService
}

// NewOrderService creates a new order service instance
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:       db,
		settings: NewSettingsService(db),
	}
}

// CreateOrderInput is the validated input for creating an order
type CreateOrderInput struct {
	CustomerName        string
	CustomerPhone       *string
	CustomerAddress     string
	DeliveryAddress     string
	BrickType           string // brick id
	Quantity            int
	AssignedTransportID *string
	AssignedLaborerIDs  []string
	DeliveryDate        *time.Time
}

// CreateOrder creates an order with the brick's current unit price frozen
// onto it and the total computed from the current settings. After the order
// is stored, the brick stock is decremented by the ordered quantity and the
// assigned transport, if any, is marked assigned. The side effects are
// best-effort: they are not wrapped in a cross-entity transaction.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerAddress) == "" ||
		strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, &ValidationError{Message: "customer name, customer address and delivery address are required"}
	}

	var brick models.Brick
	if err := s.db.First(&brick, "id = ?", in.BrickType).Error; err != nil {
		return nil, err
	}

	total, err := ComputeTotal(PricingInput{
		UnitPrice:      brick.UnitPrice,
		Quantity:       in.Quantity,
		DeliveryCharge: s.settings.GetDecimal("deliveryCharge", DefaultDeliveryCharge),
		LaborCharge:    s.settings.GetDecimal("laborCharge", DefaultLaborCharge),
		TaxRate:        s.settings.GetDecimal("taxRate", DefaultTaxRate),
	})
	if err != nil {
		return nil, err
	}

	orderSeq, err := NextSequence(s.db, SequenceOrder)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderNumber:         utils.FormatOrderNumber(orderSeq),
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerAddress:     in.CustomerAddress,
		DeliveryAddress:     in.DeliveryAddress,
		BrickType:           brick.ID,
		Quantity:            in.Quantity,
		UnitPrice:           brick.UnitPrice,
		TotalAmount:         total,
		AssignedTransportID: in.AssignedTransportID,
		AssignedLaborerIDs:  models.StringList(in.AssignedLaborerIDs),
		Status:              "pending",
		DeliveryDate:        in.DeliveryDate,
	}
	if order.AssignedLaborerIDs == nil {
		order.AssignedLaborerIDs = models.StringList{}
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	// Stock may go negative here: ordering more than the current stock is
	// allowed and surfaces as a negative balance in the inventory view.
	if err := s.db.Model(&models.Brick{}).
		Where("id = ?", brick.ID).
		Update("current_stock", gorm.Expr("current_stock - ?", in.Quantity)).Error; err != nil {
		config.LogError("services", "CreateOrder", err, logrus.Fields{
			"order_id": order.ID,
			"brick_id": brick.ID,
		})
	}

	if in.AssignedTransportID != nil && *in.AssignedTransportID != "" {
		if err := s.db.Model(&models.Transport{}).
			Where("id = ?", *in.AssignedTransportID).
			Update("status", "assigned").Error; err != nil {
			config.LogError("services", "CreateOrder", err, logrus.Fields{
				"order_id":     order.ID,
				"transport_id": *in.AssignedTransportID,
			})
		}
	}

	config.GetLogger().WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount.String(),
	}).Info("order created")

	return &order, nil
}

// GenerateInvoice builds an invoice snapshot for the given order using the
// order's frozen unit price and quantity together with the current settings.
// Settings changed since order creation are applied as-is, so the invoice
// total may differ from the order total.
func (s *OrderService) GenerateInvoice(orderID string) (*models.Invoice, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	if strings.TrimSpace(order.CustomerName) == "" ||
		strings.TrimSpace(order.CustomerAddress) == "" ||
		strings.TrimSpace(order.DeliveryAddress) == "" {
		return nil, &ValidationError{Message: "order is missing customer name, customer address or delivery address"}
	}

	// The brick may have been deleted since the order was created; the
	// line description degrades gracefully in that case.
	brickType := "Bricks"
	var brick models.Brick
	if err := s.db.First(&brick, "id = ?", order.BrickType).Error; err == nil {
		brickType = brick.Type
	}

	pricing := s.settings.PricingSettings()
	breakdown, err := ComputeBreakdown(brickType, PricingInput{
		UnitPrice:      order.UnitPrice,
		Quantity:       order.Quantity,
		DeliveryCharge: pricing.DeliveryCharge,
		LaborCharge:    pricing.LaborCharge,
		TaxRate:        pricing.TaxRate,
	})
	if err != nil {
		return nil, err
	}

	dueDate := time.Now().Add(30 * 24 * time.Hour)
	invoice := models.Invoice{
		InvoiceNumber:   utils.FormatInvoiceNumber(order.OrderNumber),
		OrderID:         order.ID,
		CustomerName:    strings.TrimSpace(order.CustomerName),
		CustomerAddress: strings.TrimSpace(order.CustomerAddress),
		DeliveryAddress: strings.TrimSpace(order.DeliveryAddress),
		Subtotal:        breakdown.Subtotal,
		TaxAmount:       breakdown.TaxAmount,
		TotalAmount:     breakdown.TotalAmount,
		PaymentStatus:   "pending",
		DueDate:         &dueDate,
	}
	if err := invoice.SetItems(breakdown.Items); err != nil {
		return nil, err
	}
	if err := s.db.Create(&invoice).Error; err != nil {
		return nil, err
	}

	config.GetLogger().WithFields(logrus.Fields{
		"invoice_id":     invoice.ID,
		"invoice_number": invoice.InvoiceNumber,
		"order_id":       order.ID,
	}).Info("invoice generated")

	return &invoice, nil
}

// MarkInvoicePaid sets the invoice's payment status to paid and marks the
// related order delivered. A missing order is tolerated: the invoice is
// still updated and the side effect is skipped.
func (s *OrderService) MarkInvoicePaid(invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&invoice).Update("payment_status", "paid").Error; err != nil {
		return nil, err
	}
	invoice.PaymentStatus = "paid"

	s.PropagatePayment(&invoice)
	return &invoice, nil
}

// PropagatePayment applies the paid-invoice side effect: the related order
// is marked delivered. Used by MarkInvoicePaid and by the invoice update
// handler when a partial update flips the payment status.
func (s *OrderService) PropagatePayment(invoice *models.Invoice) {
	result := s.db.Model(&models.Order{}).
		Where("id = ?", invoice.OrderID).
		Update("status", "delivered")
	if result.Error != nil {
		config.LogError("services", "PropagatePayment", result.Error, logrus.Fields{
			"invoice_id": invoice.ID,
			"order_id":   invoice.OrderID,
		})
		return
	}
	if result.RowsAffected == 0 {
		// Order was deleted after invoicing; nothing to update.
		config.GetLogger().WithFields(logrus.Fields{
			"invoice_id": invoice.ID,
			"order_id":   invoice.OrderID,
		}).Debug("paid invoice references a missing order")
	}
}

// MarkOrderStatus overwrites the order's status. Transition validity is the
// caller's responsibility.
func (s *OrderService) MarkOrderStatus(orderID string, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}

// IsNotFound reports whether err signals a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
