package models

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus defines the lifecycle state of a listed property.
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "AVAILABLE"
	PropertyStatusRented      PropertyStatus = "RENTED"
	PropertyStatusUnavailable PropertyStatus = "UNAVAILABLE"
)

// Property represents a rental listing. The owner is set at creation and
// never changes.
type Property struct {
	Base
	Title       string         `gorm:"not null" json:"title"`
	Location    string         `gorm:"index;not null" json:"location"`
	Type        string         `gorm:"index;not null" json:"type"`
	Price       float64        `gorm:"not null" json:"price"` // monthly rent
	Description string         `json:"description"`
	ImageURLs   *string        `json:"imageUrls,omitempty"` // JSON-encoded list of URLs
	Status      PropertyStatus `gorm:"type:varchar(16);default:AVAILABLE;index" json:"status"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"ownerId"`
	Owner       User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
