package models

import "time"

// UserType defines the role a user plays on the platform.
type UserType string

const (
	UserTypeLandlord UserType = "LANDLORD"
	UserTypeTenant   UserType = "TENANT"
)

// User represents a LINE user known to the bot. Users are created on first
// contact and never deleted. LineUserID is the only stable cross-session key.
type User struct {
	Base
	LineUserID  string    `gorm:"uniqueIndex;not null" json:"lineUserId"`
	DisplayName string    `gorm:"not null" json:"displayName"`
	UserType    UserType  `gorm:"type:varchar(16);default:TENANT" json:"userType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
