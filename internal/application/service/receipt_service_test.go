package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/internal/domain/enum"
	"github.com/subho2010/money-records-api/pkg/apperror"
)

func TestFormatReceiptNumber(t *testing.T) {
	assert.Equal(t, "SAP-003", FormatReceiptNumber("Shop", "Ann", 3))
	assert.Equal(t, "ABE-001", FormatReceiptNumber("Acme", "Bob", 1))

	// Single-letter store repeats its letter
	assert.Equal(t, "XAX-001", FormatReceiptNumber("X", "Ann", 1))

	// Lowercase names are uppercased
	assert.Equal(t, "SAP-012", FormatReceiptNumber("shop", "ann", 12))
}

func TestComputeTotal_Exact(t *testing.T) {
	items := []ReceiptItemInput{
		{Description: "Tea", Quantity: 2, Price: decimal.RequireFromString("10.5")},
		{Description: "Biscuits", Quantity: 1, Price: decimal.RequireFromString("5")},
	}

	total := ComputeTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("26")), "total = %s", total)
	assert.Equal(t, "26.00", total.StringFixed(2))
}

func TestComputeTotal_Empty(t *testing.T) {
	assert.True(t, ComputeTotal(nil).IsZero())
}

func baseReceiptInput(env *testEnv, t *testing.T) *CreateReceiptInput {
	t.Helper()
	user := env.createUser(t, true)
	return &CreateReceiptInput{
		UserID:              user.ID,
		CustomerName:        "Ravi",
		CustomerContact:     "1234567890",
		CustomerCountryCode: "+91",
		PaymentType:         enum.PaymentTypeCash,
		Items: []ReceiptItemInput{
			{Description: "Tea", Quantity: 2, Price: decimal.RequireFromString("10.5")},
			{Description: "Biscuits", Quantity: 1, Price: decimal.RequireFromString("5")},
		},
	}
}

func TestCreateReceipt_SequentialNumbering(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	first, err := svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, "SAP-001", first.ReceiptNumber)

	second, err := svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, "SAP-002", second.ReceiptNumber)

	assert.Equal(t, "26.00", second.Total.StringFixed(2))
	assert.Equal(t, "Shop again", second.Notes)
}

func TestGenerateReceiptNumber_Preview(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	number, err := svc.GenerateReceiptNumber(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.Equal(t, "SAP-001", number)

	_, err = svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)

	number, err = svc.GenerateReceiptNumber(t.Context(), input.UserID)
	require.NoError(t, err)
	assert.Equal(t, "SAP-002", number)
}

func TestCreateReceipt_CardKeepsLastFourOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	input.PaymentType = enum.PaymentTypeCard
	input.CardNumber = "4242 4242 4242 1234"

	receipt, err := svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)
	assert.Equal(t, "1234", receipt.PaymentDetails)

	// The persisted row holds only the last four digits
	stored, err := env.receipts.GetByID(t.Context(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234", stored.PaymentDetails)
}

func TestCreateReceipt_CardValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	input.PaymentType = enum.PaymentTypeCard
	input.CardNumber = "1234"

	_, err := svc.CreateReceipt(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "card_number", apperror.GetAppError(err).Errors[0].Field)
}

func TestCreateReceipt_OnlineRequiresPhone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	input.PaymentType = enum.PaymentTypeOnline
	input.PhoneNumber = "12345"

	_, err := svc.CreateReceipt(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "phone_number", apperror.GetAppError(err).Errors[0].Field)
}

func TestCreateReceipt_ItemValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	input.Items = nil
	_, err := svc.CreateReceipt(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "items", apperror.GetAppError(err).Errors[0].Field)

	input.Items = []ReceiptItemInput{{Description: "Tea", Quantity: 0, Price: decimal.NewFromInt(10)}}
	_, err = svc.CreateReceipt(t.Context(), input)
	require.Error(t, err)
	assert.Equal(t, "items[0].quantity", apperror.GetAppError(err).Errors[0].Field)
}

func TestGetReceipt_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	receipt, err := svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)

	other := env.createNamedUser(t, "Bob", "bob@example.com", "Acme")
	_, err = svc.GetReceipt(t.Context(), other.ID, receipt.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetReceipt_RecomputesTotal(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReceiptService(env.users, env.receipts, env.tx, env.locks)

	input := baseReceiptInput(env, t)
	created, err := svc.CreateReceipt(t.Context(), input)
	require.NoError(t, err)

	fetched, err := svc.GetReceipt(t.Context(), input.UserID, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "26.00", fetched.Total.StringFixed(2))
}
