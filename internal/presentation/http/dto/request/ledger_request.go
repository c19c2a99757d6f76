package request

import "github.com/shopspring/decimal"

// PostTransactionRequest represents a ledger transaction post
type PostTransactionRequest struct {
	Particulars string          `json:"particulars" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=credit debit"`
}
