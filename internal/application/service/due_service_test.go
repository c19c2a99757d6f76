package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/pkg/apperror"
)

func dueInput(env *testEnv, t *testing.T, complete bool) *CreateDueRecordInput {
	t.Helper()
	user := env.createUser(t, complete)
	return &CreateDueRecordInput{
		UserID:              user.ID,
		CustomerName:        "Ravi",
		CustomerContact:     "1234567890",
		CustomerCountryCode: "+91",
		ProductOrdered:      "Rice bag",
		Quantity:            2,
		AmountDue:           decimal.NewFromInt(250),
		ExpectedPaymentDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateDueRecord_UpdatesTotalDue(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	record, err := svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, enum.DueStateUnpaid, record.State)
	assert.Nil(t, record.PaidAt)

	user, err := env.users.GetByID(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.True(t, user.TotalDueBalance.Equal(decimal.NewFromInt(250)))
}

func TestCreateDueRecord_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	input.CustomerContact = "12345"
	_, err := svc.CreateDueRecord(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "customer_contact", apperror.GetAppError(err).Errors[0].Field)

	input.CustomerContact = "1234567890"
	input.AmountDue = decimal.NewFromInt(-5)
	_, err = svc.CreateDueRecord(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "amount_due", apperror.GetAppError(err).Errors[0].Field)
}

func TestCreateDueRecord_RequiresCompleteProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, false)
	_, err := svc.CreateDueRecord(t.Context(), input)
	assert.ErrorIs(t, err, apperror.ErrProfileIncomplete)
}

func TestMarkPaid_PostsCreditAtomically(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	record, err := svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(t.Context(), input.UserID, record.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DueStatePaid, paid.State)
	require.NotNil(t, paid.PaidAt)

	// The matching ledger credit exists
	transactions, err := env.transactions.ListByUser(t.Context(), input.UserID, true)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, enum.TransactionTypeCredit, transactions[0].Type)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "Payment received from Ravi for Rice bag", transactions[0].Particulars)

	// Both cached balances moved together
	user, err := env.users.GetByID(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.True(t, user.AccountBalance.Equal(decimal.NewFromInt(250)))
	assert.True(t, user.TotalDueBalance.IsZero())
}

func TestMarkPaid_AlreadyPaidLeavesBalancesUnchanged(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	record, err := svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)

	_, err = svc.MarkPaid(t.Context(), input.UserID, record.ID)
	require.NoError(t, err)

	_, err = svc.MarkPaid(t.Context(), input.UserID, record.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyPaid)

	// Still exactly one credit, balances untouched by the failed retry
	transactions, err := env.transactions.ListByUser(t.Context(), input.UserID, true)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	user, err := env.users.GetByID(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.True(t, user.AccountBalance.Equal(decimal.NewFromInt(250)))
	assert.True(t, user.TotalDueBalance.IsZero())
}

func TestMarkPaid_OtherUsersRecordForbidden(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	record, err := svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)

	other := env.createNamedUser(t, "Bob", "bob@example.com", "Acme")
	_, err = svc.MarkPaid(t.Context(), other.ID, record.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	current, err := env.dues.GetByID(t.Context(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DueStateUnpaid, current.State)
}

func TestTotalDueBalance_SumsUnpaidOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDueService(env.users, env.dues, env.transactions, env.tx, env.locks)

	input := dueInput(env, t, true)
	first, err := svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)

	input.AmountDue = decimal.NewFromInt(100)
	_, err = svc.CreateDueRecord(t.Context(), input)
	require.NoError(t, err)

	_, err = svc.MarkPaid(t.Context(), input.UserID, first.ID)
	require.NoError(t, err)

	total, err := svc.TotalDueBalance(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "total = %s", total)
}
