package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes the two introduction-fee payments.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeCommission TransactionType = "COMMISSION"
)

// TransactionStatus defines the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusRefunded  TransactionStatus = "REFUNDED"
)

// Transaction records a (simulated) payment between two users, optionally
// linked to the inquiry that triggered it. PaymentID is set on completion.
type Transaction struct {
	Base
	Type          TransactionType   `gorm:"type:varchar(16);not null" json:"type"`
	Amount        float64           `gorm:"not null" json:"amount"`
	Status        TransactionStatus `gorm:"type:varchar(16);default:PENDING;index" json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentID     *string           `json:"paymentId,omitempty"`
	SenderID      uuid.UUID         `gorm:"type:uuid;index;not null" json:"senderId"`
	Sender        User              `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID    uuid.UUID         `gorm:"type:uuid;index;not null" json:"receiverId"`
	Receiver      User              `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	InquiryID     *uuid.UUID        `gorm:"type:uuid;index" json:"inquiryId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
