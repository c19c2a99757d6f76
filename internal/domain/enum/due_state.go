package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DueState represents the lifecycle state of a due record.
// The transition is one-way: unpaid -> paid.
type DueState int

const (
	DueStateUnpaid DueState = 0
	DueStatePaid   DueState = 1
)

func (s DueState) String() string {
	return [...]string{"unpaid", "paid"}[s]
}

func (s DueState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DueState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DueState(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = DueStateUnpaid
	case "paid":
		*s = DueStatePaid
	}
	return nil
}

func (s DueState) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DueState) Scan(value interface{}) error {
	if value == nil {
		*s = DueStateUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DueState(v)
	case int:
		*s = DueState(v)
	}
	return nil
}

// DueStatus is the display status derived from state and expected payment date
type DueStatus string

const (
	DueStatusPaid    DueStatus = "Paid"
	DueStatusOverdue DueStatus = "Overdue"
	DueStatusPending DueStatus = "Pending"
)
