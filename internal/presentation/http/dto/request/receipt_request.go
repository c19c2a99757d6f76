package request

import "github.com/shopspring/decimal"

// ReceiptItemRequest represents one line item on the receipt form
type ReceiptItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

// CreateReceiptRequest represents a receipt creation request
type CreateReceiptRequest struct {
	Date                string               `json:"date"` // YYYY-MM-DD, defaults to today
	CustomerName        string               `json:"customer_name" binding:"required"`
	CustomerContact     string               `json:"customer_contact" binding:"required"`
	CustomerCountryCode string               `json:"customer_country_code" binding:"required"`
	PaymentType         string               `json:"payment_type" binding:"required,oneof=cash card online"`
	CardNumber          string               `json:"card_number"`
	PhoneNumber         string               `json:"phone_number"`
	Notes               string               `json:"notes"`
	Items               []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}
