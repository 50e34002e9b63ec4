package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/services"
	"github.com/brickworks/brickworks-api/utils"
)

// CreateInvoiceRequest represents the request body for storing an invoice
// directly. Writing an invoice here triggers no order side effects; the
// workflow endpoints own those.
type CreateInvoiceRequest struct {
	InvoiceNumber   string          `json:"invoice_number"`
	OrderID         string          `json:"order_id" binding:"required"`
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerAddress string          `json:"customer_address" binding:"required"`
	DeliveryAddress string          `json:"delivery_address" binding:"required"`
	Items           string          `json:"items" binding:"required"`
	Subtotal        decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount" binding:"required"`
	PaymentStatus   string          `json:"payment_status"`
	DueDate         *time.Time      `json:"due_date"`
}

// UpdateInvoiceRequest represents a partial update of an invoice
type UpdateInvoiceRequest struct {
	CustomerName    *string          `json:"customer_name"`
	CustomerAddress *string          `json:"customer_address"`
	DeliveryAddress *string          `json:"delivery_address"`
	Items           *string          `json:"items"`
	Subtotal        *decimal.Decimal `json:"subtotal"`
	TaxAmount       *decimal.Decimal `json:"tax_amount"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	PaymentStatus   *string          `json:"payment_status"`
	DueDate         *time.Time       `json:"due_date"`
}

// GetInvoices handles GET /api/v1/invoices - lists invoices, newest first
func GetInvoices(c *gin.Context) {
	db := config.GetDB()
	var invoices []models.Invoice
	if err := db.Order("invoice_date DESC").Find(&invoices).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch invoices")
		return
	}
	respondData(c, http.StatusOK, invoices)
}

// GetInvoiceByOrder handles GET /api/v1/invoices/order/:orderId - returns
// the first invoice for the given order
func GetInvoiceByOrder(c *gin.Context) {
	db := config.GetDB()
	var invoice models.Invoice
	if err := db.First(&invoice, "order_id = ?", c.Param("orderId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		return
	}
	respondData(c, http.StatusOK, invoice)
}

// CreateInvoice handles POST /api/v1/invoices - stores an invoice as given.
// An invoice number is generated when the caller does not supply one.
func CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice data")
		return
	}

	db := config.GetDB()
	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		seq, err := services.NextSequence(db, services.SequenceInvoice)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to generate invoice number")
			return
		}
		invoiceNumber = utils.FormatInvoiceSequence(seq)
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	invoice := models.Invoice{
		InvoiceNumber:   invoiceNumber,
		OrderID:         req.OrderID,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		DeliveryAddress: req.DeliveryAddress,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		TaxAmount:       req.TaxAmount,
		TotalAmount:     req.TotalAmount,
		PaymentStatus:   paymentStatus,
		DueDate:         req.DueDate,
	}

	if err := db.Create(&invoice).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create invoice")
		return
	}
	respondData(c, http.StatusCreated, invoice)
}

// UpdateInvoice handles PUT /api/v1/invoices/:id - partial update. When the
// payment status moves to "paid" the related order is marked delivered; a
// missing order is tolerated.
func UpdateInvoice(c *gin.Context) {
	db := config.GetDB()
	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice data")
		return
	}

	updates := map[string]interface{}{}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerAddress != nil {
		updates["customer_address"] = *req.CustomerAddress
	}
	if req.DeliveryAddress != nil {
		updates["delivery_address"] = *req.DeliveryAddress
	}
	if req.Items != nil {
		updates["items"] = *req.Items
	}
	if req.Subtotal != nil {
		updates["subtotal"] = *req.Subtotal
	}
	if req.TaxAmount != nil {
		updates["tax_amount"] = *req.TaxAmount
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	if len(updates) > 0 {
		if err := db.Model(&invoice).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update invoice")
			return
		}
	}
	if err := db.First(&invoice, "id = ?", invoice.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load invoice")
		return
	}

	if req.PaymentStatus != nil && *req.PaymentStatus == "paid" {
		services.NewOrderService(db).PropagatePayment(&invoice)
	}

	respondData(c, http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /api/v1/invoices/:id
func DeleteInvoice(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Invoice{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete invoice")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		return
	}
	c.Status(http.StatusNoContent)
}
