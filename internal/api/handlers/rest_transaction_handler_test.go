package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/services"
)

func setupTransactionRouter(transactionService *MockTransactionService) *gin.Engine {
	handler := NewRestTransactionHandler(transactionService)
	r := gin.New()
	r.POST("/api/transactions", handler.CreateTransaction)
	r.GET("/api/transactions/:id", handler.GetTransactionByID)
	r.PATCH("/api/transactions/:id", handler.UpdateTransactionStatus)
	return r
}

func TestCreateTransaction(t *testing.T) {
	transactionService := new(MockTransactionService)
	r := setupTransactionRouter(transactionService)

	senderID := uuid.New()
	receiverID := uuid.New()
	transactionService.On("Create", mock.Anything, mock.MatchedBy(func(p services.CreateTransactionParams) bool {
		return p.Type == models.TransactionTypeDeposit &&
			p.Amount == 1000 &&
			p.SenderID == senderID &&
			p.ReceiverID == receiverID &&
			p.PaymentMethod == "SIMULATED"
	})).Return(&models.Transaction{Status: models.TransactionStatusPending}, nil)

	w := performJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
		"type":        "DEPOSIT",
		"amount":      1000,
		"sender_id":   senderID.String(),
		"receiver_id": receiverID.String(),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	transactionService.AssertExpectations(t)
}

func TestCreateTransaction_InvalidTypeIs400(t *testing.T) {
	r := setupTransactionRouter(new(MockTransactionService))

	w := performJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
		"type":        "BRIBE",
		"amount":      1000,
		"sender_id":   uuid.NewString(),
		"receiver_id": uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTransactionStatus_Completion(t *testing.T) {
	transactionService := new(MockTransactionService)
	r := setupTransactionRouter(transactionService)

	transactionID := uuid.New()
	transactionService.On("UpdateStatus", mock.Anything, transactionID, models.TransactionStatusCompleted, mock.Anything).
		Return(&models.Transaction{Base: models.Base{ID: transactionID}, Status: models.TransactionStatusCompleted}, nil)

	w := performJSON(t, r, http.MethodPatch, "/api/transactions/"+transactionID.String(), gin.H{
		"status":     "COMPLETED",
		"payment_id": "pay_123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "COMPLETED")
	transactionService.AssertExpectations(t)
}

func TestUpdateTransactionStatus_NotFound(t *testing.T) {
	transactionService := new(MockTransactionService)
	r := setupTransactionRouter(transactionService)

	transactionID := uuid.New()
	transactionService.On("UpdateStatus", mock.Anything, transactionID, models.TransactionStatusCompleted, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	w := performJSON(t, r, http.MethodPatch, "/api/transactions/"+transactionID.String(), gin.H{
		"status": "COMPLETED",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTransactionByID_ServerErrorIs500(t *testing.T) {
	transactionService := new(MockTransactionService)
	r := setupTransactionRouter(transactionService)

	transactionID := uuid.New()
	transactionService.On("FindByID", mock.Anything, transactionID).Return(nil, errors.New("db down"))

	w := performJSON(t, r, http.MethodGet, "/api/transactions/"+transactionID.String(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
