package handlers

import (
	"errors"
	"net/http"

	"github.com/laasya2505/kuber-ai-assignment/internal/chat"
	"github.com/laasya2505/kuber-ai-assignment/internal/models"
	"github.com/laasya2505/kuber-ai-assignment/internal/purchase"
	"github.com/laasya2505/kuber-ai-assignment/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type API struct {
	Assistant *chat.Assistant
	Purchases *purchase.Service
}

func RegisterRoutes(r *gin.Engine, api *API) {
	r.POST("/api/v1/chat", api.chat)
	r.POST("/api/v2/purchase", api.purchaseGold)
	r.GET("/api/v1/transactions/:transaction_id", getTransaction)
	r.GET("/api/v1/users/:user_id/transactions", getUserTransactions)
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response      string `json:"response"`
	IsGoldRelated bool   `json:"is_gold_related"`
	NudgePurchase bool   `json:"nudge_purchase"`
	SessionID     string `json:"session_id"`
}

func (a *API) chat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := a.Assistant.AnalyzeMessage(c.Request.Context(), req.Message, req.SessionID)
	c.JSON(http.StatusOK, chatResponse{
		Response:      result.Response,
		IsGoldRelated: result.IsGoldRelated,
		NudgePurchase: result.NudgePurchase,
		SessionID:     result.SessionID,
	})
}

type purchaseRequest struct {
	User struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone" binding:"required"`
	} `json:"user" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type purchaseResponse struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id"`
	GoldGrams     float64 `json:"gold_grams"`
	TotalAmount   float64 `json:"total_amount"`
	Message       string  `json:"message"`
}

func (a *API) purchaseGold(c *gin.Context) {
	var req purchaseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt, err := a.Purchases.Purchase(purchase.Buyer{
		Name:  req.User.Name,
		Email: req.User.Email,
		Phone: req.User.Phone,
	}, req.Amount)
	if err != nil {
		if errors.Is(err, purchase.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Persistence details stay server-side.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error processing purchase"})
		return
	}
	c.JSON(http.StatusOK, purchaseResponse{
		Success:       true,
		TransactionID: receipt.TransactionID,
		GoldGrams:     receipt.GoldGrams,
		TotalAmount:   receipt.TotalAmount,
		Message:       receipt.Message,
	})
}

func getTransaction(c *gin.Context) {
	id := c.Param("transaction_id")
	var txn models.Transaction
	db := store.GetDB()
	if err := db.Where("transaction_id = ?", id).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"transaction_id": txn.TransactionID,
		"amount":         txn.Amount,
		"gold_grams":     txn.GoldGrams,
		"status":         txn.Status,
		"created_at":     txn.CreatedAt,
	})
}

func getUserTransactions(c *gin.Context) {
	userID := c.Param("user_id")
	var txns []models.Transaction
	db := store.GetDB()
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching transactions"})
		return
	}
	c.JSON(http.StatusOK, txns)
}
