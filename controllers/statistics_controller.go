package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// GetStatistics handles GET /api/v1/statistics - dashboard summary numbers
func GetStatistics(c *gin.Context) {
	db := config.GetDB()

	var bricks []models.Brick
	if err := db.Find(&bricks).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch statistics")
		return
	}

	totalBricks := 0
	lowStockBricks := []models.Brick{}
	for _, brick := range bricks {
		totalBricks += brick.CurrentStock
		if brick.CurrentStock <= brick.MinStock {
			lowStockBricks = append(lowStockBricks, brick)
		}
	}

	var availableTransport int64
	if err := db.Model(&models.Transport{}).Where("status = ?", "available").Count(&availableTransport).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch statistics")
		return
	}

	var activeLaborers int64
	if err := db.Model(&models.Laborer{}).Where("status = ?", "active").Count(&activeLaborers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch statistics")
		return
	}

	var pendingOrders int64
	if err := db.Model(&models.Order{}).Where("status = ?", "pending").Count(&pendingOrders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch statistics")
		return
	}

	var paidInvoices []models.Invoice
	if err := db.Where("payment_status = ?", "paid").Find(&paidInvoices).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch statistics")
		return
	}
	totalSales := decimal.Zero
	for _, invoice := range paidInvoices {
		totalSales = totalSales.Add(invoice.TotalAmount)
	}

	respondData(c, http.StatusOK, gin.H{
		"total_bricks":        totalBricks,
		"available_transport": availableTransport,
		"active_laborers":     activeLaborers,
		"pending_orders":      pendingOrders,
		"total_sales":         totalSales,
		"low_stock_bricks":    lowStockBricks,
	})
}
