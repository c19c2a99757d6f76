package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// VerificationChannel represents how a verification code is delivered
type VerificationChannel int

const (
	VerificationChannelEmail VerificationChannel = 0
	VerificationChannelPhone VerificationChannel = 1
)

func (c VerificationChannel) String() string {
	return [...]string{"email", "phone"}[c]
}

func (c VerificationChannel) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *VerificationChannel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = VerificationChannel(i)
		return nil
	}
	switch str {
	case "email":
		*c = VerificationChannelEmail
	case "phone":
		*c = VerificationChannelPhone
	}
	return nil
}

func (c VerificationChannel) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *VerificationChannel) Scan(value interface{}) error {
	if value == nil {
		*c = VerificationChannelEmail
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = VerificationChannel(v)
	case int:
		*c = VerificationChannel(v)
	}
	return nil
}
