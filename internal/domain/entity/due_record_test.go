package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/subho2010/money-records-api/internal/domain/enum"
)

func TestDueRecord_IsPastDue(t *testing.T) {
	expected := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	record := &DueRecord{ExpectedPaymentDate: expected, State: enum.DueStateUnpaid}

	// Not past due on the expected day itself, even late in the day
	assert.False(t, record.IsPastDue(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))

	// Past due from the next UTC day onward
	assert.True(t, record.IsPastDue(time.Date(2025, 3, 11, 0, 0, 1, 0, time.UTC)))

	// Before the expected day
	assert.False(t, record.IsPastDue(time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)))
}

func TestDueRecord_PaidNeverPastDue(t *testing.T) {
	record := &DueRecord{
		ExpectedPaymentDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		State:               enum.DueStatePaid,
	}
	assert.False(t, record.IsPastDue(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDueRecord_Status(t *testing.T) {
	expected := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	unpaid := &DueRecord{ExpectedPaymentDate: expected, State: enum.DueStateUnpaid}
	assert.Equal(t, enum.DueStatusPending, unpaid.Status(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, enum.DueStatusOverdue, unpaid.Status(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))

	paid := &DueRecord{ExpectedPaymentDate: expected, State: enum.DueStatePaid}
	assert.Equal(t, enum.DueStatusPaid, paid.Status(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
}
