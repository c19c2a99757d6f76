package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TransactionType represents the direction of a ledger transaction
type TransactionType int

const (
	TransactionTypeCredit TransactionType = 0
	TransactionTypeDebit  TransactionType = 1
)

func (t TransactionType) String() string {
	return [...]string{"credit", "debit"}[t]
}

// IsValid reports whether the value is a known transaction type
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// ParseTransactionType parses a transaction type from its string form
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "credit":
		return TransactionTypeCredit, nil
	case "debit":
		return TransactionTypeDebit, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	parsed, err := ParseTransactionType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeCredit
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
