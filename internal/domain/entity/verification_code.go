package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"gorm.io/gorm"
)

// VerificationCode is a one-time code issued to verify an email address or
// phone number. Codes are 6 digits, expire 10 minutes after issue, and are
// invalidated on first successful check.
type VerificationCode struct {
	ID        uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	Channel   enum.VerificationChannel `gorm:"not null" json:"channel"`
	Target    string                   `gorm:"size:255;not null;index" json:"target"`
	Code      string                   `gorm:"size:10;not null" json:"-"`
	ExpiresAt time.Time                `gorm:"not null" json:"expires_at"`
	Used      bool                     `gorm:"default:false" json:"used"`
	CreatedAt time.Time                `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new verification code
func (v *VerificationCode) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VerificationCode model
func (VerificationCode) TableName() string {
	return "verification_codes"
}

// IsExpired checks if the code has expired
func (v *VerificationCode) IsExpired() bool {
	return time.Now().After(v.ExpiresAt)
}

// IsValid checks if the code is usable (not expired and not used)
func (v *VerificationCode) IsValid() bool {
	return !v.IsExpired() && !v.Used
}
