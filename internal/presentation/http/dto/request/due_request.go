package request

import "github.com/shopspring/decimal"

// CreateDueRecordRequest represents a due record creation request
type CreateDueRecordRequest struct {
	CustomerName        string          `json:"customer_name" binding:"required"`
	CustomerContact     string          `json:"customer_contact" binding:"required"`
	CustomerCountryCode string          `json:"customer_country_code" binding:"required"`
	ProductOrdered      string          `json:"product_ordered" binding:"required"`
	Quantity            int             `json:"quantity" binding:"required"`
	AmountDue           decimal.Decimal `json:"amount_due" binding:"required"`
	ExpectedPaymentDate string          `json:"expected_payment_date" binding:"required"` // YYYY-MM-DD
}
