package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

// RestTransactionHandler handles REST requests for transactions.
type RestTransactionHandler struct {
	transactionService services.ITransactionService
}

// NewRestTransactionHandler creates a new RestTransactionHandler.
func NewRestTransactionHandler(transactionService services.ITransactionService) *RestTransactionHandler {
	return &RestTransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest is the body of POST /api/transactions.
type CreateTransactionRequest struct {
	Type          models.TransactionType `json:"type" binding:"required,oneof=DEPOSIT COMMISSION"`
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	SenderID      string                 `json:"sender_id" binding:"required"`
	ReceiverID    string                 `json:"receiver_id" binding:"required"`
	InquiryID     *string                `json:"inquiry_id"`
	PaymentMethod string                 `json:"payment_method"`
}

// CreateTransaction handles POST /api/transactions. The transaction is
// recorded PENDING; completion happens via PATCH.
func (h *RestTransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sender ID"})
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiver ID"})
		return
	}
	var inquiryID *uuid.UUID
	if req.InquiryID != nil {
		parsed, err := uuid.Parse(*req.InquiryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID"})
			return
		}
		inquiryID = &parsed
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "SIMULATED"
	}

	transaction, err := h.transactionService.Create(c.Request.Context(), services.CreateTransactionParams{
		Type:          req.Type,
		Amount:        req.Amount,
		SenderID:      senderID,
		ReceiverID:    receiverID,
		InquiryID:     inquiryID,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": transaction})
}

// GetTransactionByID handles GET /api/transactions/:id
func (h *RestTransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	transaction, err := h.transactionService.FindByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transaction})
}

// UpdateTransactionStatusRequest is the body of PATCH /api/transactions/:id.
type UpdateTransactionStatusRequest struct {
	Status    models.TransactionStatus `json:"status" binding:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
	PaymentID *string                  `json:"payment_id"`
}

// UpdateTransactionStatus handles PATCH /api/transactions/:id. Completing a
// transaction linked to an inquiry approves that inquiry.
func (h *RestTransactionHandler) UpdateTransactionStatus(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	var req UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	transaction, err := h.transactionService.UpdateStatus(c.Request.Context(), transactionID, req.Status, req.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transaction})
}
