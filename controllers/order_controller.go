package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
	"github.com/brickworks/brickworks-api/services"
)

// CreateOrderRequest represents the request body for creating an order.
// Quantity is validated by the pricing engine rather than the binding so a
// non-positive value surfaces as INVALID_PRICING_INPUT, not a generic
// validation failure.
type CreateOrderRequest struct {
	CustomerName        string     `json:"customer_name" binding:"required"`
	CustomerPhone       *string    `json:"customer_phone"`
	CustomerAddress     string     `json:"customer_address" binding:"required"`
	DeliveryAddress     string     `json:"delivery_address" binding:"required"`
	BrickType           string     `json:"brick_type" binding:"required"`
	Quantity            int        `json:"quantity"`
	AssignedTransportID *string    `json:"assigned_transport_id"`
	AssignedLaborerIDs  []string   `json:"assigned_laborer_ids"`
	DeliveryDate        *time.Time `json:"delivery_date"`
	GenerateInvoice     bool       `json:"generate_invoice"`
}

// UpdateOrderRequest represents a partial update of an order
type UpdateOrderRequest struct {
	CustomerName        *string    `json:"customer_name"`
	CustomerPhone       *string    `json:"customer_phone"`
	CustomerAddress     *string    `json:"customer_address"`
	DeliveryAddress     *string    `json:"delivery_address"`
	AssignedTransportID *string    `json:"assigned_transport_id"`
	AssignedLaborerIDs  *[]string  `json:"assigned_laborer_ids"`
	Status              *string    `json:"status"`
	DeliveryDate        *time.Time `json:"delivery_date"`
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first
func GetOrders(c *gin.Context) {
	db := config.GetDB()
	var orders []models.Order
	if err := db.Order("order_date DESC").Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status
func GetOrdersByStatus(c *gin.Context) {
	db := config.GetDB()
	var orders []models.Order
	if err := db.Where("status = ?", c.Param("status")).Order("order_date DESC").Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch orders by status")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders - creates an order through the
// fulfillment workflow (price freeze, stock decrement, transport
// assignment), optionally generating the invoice in the same request.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order data")
		return
	}

	svc := services.NewOrderService(config.GetDB())
	order, err := svc.CreateOrder(services.CreateOrderInput{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
		DeliveryAddress:     req.DeliveryAddress,
		BrickType:           req.BrickType,
		Quantity:            req.Quantity,
		AssignedTransportID: req.AssignedTransportID,
		AssignedLaborerIDs:  req.AssignedLaborerIDs,
		DeliveryDate:        req.DeliveryDate,
	})
	if err != nil {
		respondServiceError(c, err, "Brick not found")
		return
	}

	if req.GenerateInvoice {
		invoice, err := svc.GenerateInvoice(order.ID)
		if err != nil {
			// The order exists; surface it along with the invoice failure.
			c.JSON(http.StatusCreated, gin.H{
				"success": true,
				"data":    order,
				"warning": gin.H{
					"code":    "INVOICE_NOT_GENERATED",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    order,
			"invoice": invoice,
		})
		return
	}

	respondData(c, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/v1/orders/:id - partial update. Status is a
// direct overwrite; transition validity is the caller's responsibility.
func UpdateOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order data")
		return
	}

	updates := map[string]interface{}{}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		updates["customer_phone"] = *req.CustomerPhone
	}
	if req.CustomerAddress != nil {
		updates["customer_address"] = *req.CustomerAddress
	}
	if req.DeliveryAddress != nil {
		updates["delivery_address"] = *req.DeliveryAddress
	}
	if req.AssignedTransportID != nil {
		updates["assigned_transport_id"] = *req.AssignedTransportID
	}
	if req.AssignedLaborerIDs != nil {
		updates["assigned_laborer_ids"] = models.StringList(*req.AssignedLaborerIDs)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DeliveryDate != nil {
		updates["delivery_date"] = *req.DeliveryDate
	}

	if len(updates) > 0 {
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order")
			return
		}
	}
	if err := db.First(&order, "id = ?", order.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load order")
		return
	}
	respondData(c, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/v1/orders/:id
func DeleteOrder(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Order{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete order")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateOrderInvoice handles POST /api/v1/orders/:id/invoice - generates
// an invoice snapshot for an existing order using the current settings
func GenerateOrderInvoice(c *gin.Context) {
	svc := services.NewOrderService(config.GetDB())
	invoice, err := svc.GenerateInvoice(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}
	respondData(c, http.StatusCreated, invoice)
}
