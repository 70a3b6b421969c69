package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tinhour/line-rent-bot/internal/models"
	"github.com/tinhour/line-rent-bot/internal/payment"
)

// CreateTransactionParams carries the fields needed to record a transaction.
type CreateTransactionParams struct {
	Type          models.TransactionType
	Amount        float64
	SenderID      uuid.UUID
	ReceiverID    uuid.UUID
	InquiryID     *uuid.UUID
	PaymentMethod string
}

// ITransactionService defines the interface for transaction operations.
type ITransactionService interface {
	Create(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error)
	// UpdateStatus sets the transaction status and payment ID. Completing a
	// transaction linked to an inquiry also flips the inquiry to APPROVED.
	UpdateStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus, paymentID *string) (*models.Transaction, error)
	// Settle creates the transaction, charges the gateway and completes it as
	// one unit of work. A DEPOSIT settlement approves the linked inquiry.
	Settle(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error)
	FindByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// transactionService implements ITransactionService.
type transactionService struct {
	db      *gorm.DB
	gateway payment.Gateway
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(db *gorm.DB, gateway payment.Gateway) ITransactionService {
	return &transactionService{db: db, gateway: gateway}
}

// Create records a PENDING transaction.
func (s *transactionService) Create(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error) {
	transaction := models.Transaction{
		Type:          params.Type,
		Amount:        params.Amount,
		Status:        models.TransactionStatusPending,
		PaymentMethod: params.PaymentMethod,
		SenderID:      params.SenderID,
		ReceiverID:    params.ReceiverID,
		InquiryID:     params.InquiryID,
	}
	if err := s.db.WithContext(ctx).Create(&transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to create %s transaction: %w", params.Type, err)
	}
	return &transaction, nil
}

// UpdateStatus implements the REST PATCH semantics.
func (s *transactionService) UpdateStatus(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus, paymentID *string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transaction, "id = ?", transactionID).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{"status": status}
		if paymentID != nil {
			updates["payment_id"] = *paymentID
		}
		if err := tx.Model(&transaction).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
		}
		if status == models.TransactionStatusCompleted && transaction.InquiryID != nil {
			if err := tx.Model(&models.Inquiry{}).
				Where("id = ?", *transaction.InquiryID).
				Update("status", models.InquiryStatusApproved).Error; err != nil {
				return fmt.Errorf("failed to approve inquiry %s: %w", *transaction.InquiryID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Settle wraps create, gateway charge and completion in a single database
// transaction so a failure leaves no half-settled state behind.
func (s *transactionService) Settle(ctx context.Context, params CreateTransactionParams) (*models.Transaction, error) {
	var settled models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settled = models.Transaction{
			Type:          params.Type,
			Amount:        params.Amount,
			Status:        models.TransactionStatusPending,
			PaymentMethod: params.PaymentMethod,
			SenderID:      params.SenderID,
			ReceiverID:    params.ReceiverID,
			InquiryID:     params.InquiryID,
		}
		if err := tx.Create(&settled).Error; err != nil {
			return fmt.Errorf("failed to create %s transaction: %w", params.Type, err)
		}

		paymentID, err := s.gateway.Charge(ctx, params.Amount, params.PaymentMethod)
		if err != nil {
			return fmt.Errorf("payment failed for %s transaction: %w", params.Type, err)
		}

		settled.Status = models.TransactionStatusCompleted
		settled.PaymentID = &paymentID
		if err := tx.Model(&settled).Updates(map[string]interface{}{
			"status":     models.TransactionStatusCompleted,
			"payment_id": paymentID,
		}).Error; err != nil {
			return fmt.Errorf("failed to complete transaction %s: %w", settled.ID, err)
		}

		if params.Type == models.TransactionTypeDeposit && params.InquiryID != nil {
			if err := tx.Model(&models.Inquiry{}).
				Where("id = ?", *params.InquiryID).
				Update("status", models.InquiryStatusApproved).Error; err != nil {
				return fmt.Errorf("failed to approve inquiry %s: %w", *params.InquiryID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &settled, nil
}

// FindByID finds a transaction with its parties preloaded.
func (s *transactionService) FindByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&transaction, "id = ?", transactionID).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindByUserID returns transactions the user sent or received, newest first.
func (s *transactionService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return transactions, nil
}
