package models

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus defines the lifecycle state of a tenant inquiry.
type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "PENDING"
	InquiryStatusApproved  InquiryStatus = "APPROVED"
	InquiryStatusRejected  InquiryStatus = "REJECTED"
	InquiryStatusCompleted InquiryStatus = "COMPLETED"
)

// Inquiry records a tenant's expression of interest in a property. It moves
// to APPROVED once the tenant's deposit transaction completes. Repeated
// contact actions for the same (tenant, property) pair intentionally create
// separate inquiries.
type Inquiry struct {
	Base
	Message      string        `json:"message"`
	Status       InquiryStatus `gorm:"type:varchar(16);default:PENDING;index" json:"status"`
	TenantID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"tenantId"`
	Tenant       User          `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	PropertyID   uuid.UUID     `gorm:"type:uuid;index;not null" json:"propertyId"`
	Property     Property      `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:InquiryID" json:"transactions,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
