package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brickworks/brickworks-api/config"
	"github.com/brickworks/brickworks-api/models"
)

// CreateExpenseRequest represents the request body for recording an expense.
// Amount accepts both a decimal string and a JSON number.
type CreateExpenseRequest struct {
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate   *time.Time      `json:"expense_date"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Notes         *string         `json:"notes"`
}

// UpdateExpenseRequest represents a partial update of an expense
type UpdateExpenseRequest struct {
	Category      *string          `json:"category"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	ExpenseDate   *time.Time       `json:"expense_date"`
	PaymentMethod *string          `json:"payment_method"`
	Notes         *string          `json:"notes"`
}

// GetExpenses handles GET /api/v1/expenses - lists expenses, newest first
func GetExpenses(c *gin.Context) {
	db := config.GetDB()
	var expenses []models.Expense
	if err := db.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch expenses")
		return
	}
	respondData(c, http.StatusOK, expenses)
}

// CreateExpense handles POST /api/v1/expenses
func CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expense data")
		return
	}

	expense := models.Expense{
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}

	db := config.GetDB()
	if err := db.Create(&expense).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create expense")
		return
	}
	respondData(c, http.StatusCreated, expense)
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func UpdateExpense(c *gin.Context) {
	db := config.GetDB()
	var expense models.Expense
	if err := db.First(&expense, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Expense not found")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expense data")
		return
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.ExpenseDate != nil {
		updates["expense_date"] = *req.ExpenseDate
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := db.Model(&expense).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update expense")
			return
		}
	}
	if err := db.First(&expense, "id = ?", expense.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load expense")
		return
	}
	respondData(c, http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func DeleteExpense(c *gin.Context) {
	db := config.GetDB()
	result := db.Delete(&models.Expense{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete expense")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Expense not found")
		return
	}
	c.Status(http.StatusNoContent)
}
