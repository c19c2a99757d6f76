package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// User represents an account owner: the shopkeeper issuing receipts and
// keeping the ledger.
type User struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Email            string          `gorm:"size:255;unique;not null" json:"email"`
	Password         string          `gorm:"size:255;not null" json:"-"`
	StoreName        *string         `gorm:"size:255" json:"store_name,omitempty"`
	StoreAddress     *string         `gorm:"type:text" json:"store_address,omitempty"`
	StoreContact     *string         `gorm:"size:50" json:"store_contact,omitempty"`
	StoreCountryCode *string         `gorm:"size:10" json:"store_country_code,omitempty"`
	CurrencySymbol   *string         `gorm:"size:8" json:"currency_symbol,omitempty"`
	EmailVerified    bool            `gorm:"default:false" json:"email_verified"`
	PhoneVerified    bool            `gorm:"default:false" json:"phone_verified"`
	ProfileComplete  bool            `gorm:"default:false" json:"profile_complete"`
	AccountBalance   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"account_balance"`
	TotalDueBalance  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_due_balance"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
	DueRecords   []DueRecord   `gorm:"foreignKey:UserID" json:"-"`
	Receipts     []Receipt     `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// ComputeProfileComplete derives the profile_complete flag: all required
// store fields are present, the contact is a 10-digit number, and both email
// and phone are verified. Financial writes are gated on this.
func (u *User) ComputeProfileComplete() bool {
	return u.Name != "" &&
		u.StoreName != nil && *u.StoreName != "" &&
		u.StoreAddress != nil && *u.StoreAddress != "" &&
		u.StoreContact != nil && contactPattern.MatchString(*u.StoreContact) &&
		u.EmailVerified &&
		u.PhoneVerified
}
