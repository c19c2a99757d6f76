package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentType represents how a receipt was paid
type PaymentType int

const (
	PaymentTypeCash   PaymentType = 0
	PaymentTypeCard   PaymentType = 1
	PaymentTypeOnline PaymentType = 2
)

func (p PaymentType) String() string {
	return [...]string{"cash", "card", "online"}[p]
}

// IsValid reports whether the value is a known payment type
func (p PaymentType) IsValid() bool {
	return p >= PaymentTypeCash && p <= PaymentTypeOnline
}

// ParsePaymentType parses a payment type from its string form
func ParsePaymentType(s string) (PaymentType, error) {
	switch s {
	case "cash":
		return PaymentTypeCash, nil
	case "card":
		return PaymentTypeCard, nil
	case "online":
		return PaymentTypeOnline, nil
	}
	return 0, fmt.Errorf("unknown payment type %q", s)
}

func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentType(i)
		return nil
	}
	parsed, err := ParsePaymentType(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p PaymentType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentType(v)
	case int:
		*p = PaymentType(v)
	}
	return nil
}
