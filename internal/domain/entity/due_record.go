package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DueRecord is an outstanding customer obligation awaiting payment.
// Its only mutation is the one-way unpaid -> paid transition.
type DueRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName        string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerContact     string          `gorm:"size:50;not null" json:"customer_contact"`
	CustomerCountryCode string          `gorm:"size:10;not null" json:"customer_country_code"`
	ProductOrdered      string          `gorm:"type:text;not null" json:"product_ordered"`
	Quantity            int             `gorm:"not null" json:"quantity"`
	AmountDue           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount_due"`
	ExpectedPaymentDate time.Time       `gorm:"type:date;not null;index" json:"expected_payment_date"`
	State               enum.DueState   `gorm:"default:0" json:"state"`
	PaidAt              *time.Time      `json:"paid_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new due record
func (d *DueRecord) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DueRecord model
func (DueRecord) TableName() string {
	return "due_records"
}

// IsPaid reports whether the record has reached its terminal state
func (d *DueRecord) IsPaid() bool {
	return d.State == enum.DueStatePaid
}

// IsPastDue reports whether an unpaid record's expected payment date has
// passed. Dates are compared day-granular in UTC: the expected payment date
// is treated as midnight UTC and the record becomes overdue once the current
// UTC date is past it.
func (d *DueRecord) IsPastDue(now time.Time) bool {
	if d.IsPaid() {
		return false
	}
	expected := d.ExpectedPaymentDate.UTC()
	expectedDay := time.Date(expected.Year(), expected.Month(), expected.Day(), 0, 0, 0, 0, time.UTC)
	today := now.UTC()
	currentDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return expectedDay.Before(currentDay)
}

// Status derives the display status. The three values are mutually exclusive
// and never stored.
func (d *DueRecord) Status(now time.Time) enum.DueStatus {
	switch {
	case d.IsPaid():
		return enum.DueStatusPaid
	case d.IsPastDue(now):
		return enum.DueStatusOverdue
	default:
		return enum.DueStatusPending
	}
}
