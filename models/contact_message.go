package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Delivery status of an archived contact message
const (
	ContactStatusSent   = "sent"
	ContactStatusFailed = "failed"
	ContactStatusLogged = "logged" // test mode, printed instead of sent
)

// ContactMessage is the archived copy of a contact form submission
type ContactMessage struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null;index" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status        string `gorm:"not null;default:sent;index" json:"status"`
	ProviderID    string `json:"provider_id,omitempty"`
	DeliveryError string `gorm:"type:text" json:"delivery_error,omitempty"`

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// BeforeCreate assigns a UUID when none was set
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
