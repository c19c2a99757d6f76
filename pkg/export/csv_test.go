package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
)

func TestLedgerCSV_RunningBalance(t *testing.T) {
	transactions := []entity.Transaction{
		{
			Particulars: "Opening sale",
			Amount:      decimal.NewFromInt(100),
			Type:        enum.TransactionTypeCredit,
			CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Particulars: "Supplier payment",
			Amount:      decimal.NewFromInt(30),
			Type:        enum.TransactionTypeDebit,
			CreatedAt:   time.Date(2025, 3, 2, 11, 30, 0, 0, time.UTC),
		},
	}

	data := string(LedgerCSV(transactions))

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(data, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `"DATE","PARTICULARS","TYPE","AMOUNT","BALANCE"`, lines[0])
	assert.Equal(t, `"2025-03-01 10:00:00","Opening sale","credit","100.00","100.00"`, lines[1])
	assert.Equal(t, `"2025-03-02 11:30:00","Supplier payment","debit","30.00","70.00"`, lines[2])
}

func TestLedgerCSV_StartsWithBOM(t *testing.T) {
	data := LedgerCSV(nil)
	assert.True(t, strings.HasPrefix(string(data), "\uFEFF"))
}

func TestLedgerCSV_QuotesAreDoubled(t *testing.T) {
	transactions := []entity.Transaction{
		{
			Particulars: `Sold "premium" tea`,
			Amount:      decimal.NewFromInt(10),
			Type:        enum.TransactionTypeCredit,
			CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	data := string(LedgerCSV(transactions))
	assert.Contains(t, data, `"Sold ""premium"" tea"`)
}

func TestLedgerCSV_EmptyLedger(t *testing.T) {
	data := string(LedgerCSV(nil))
	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(data, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `"DATE","PARTICULARS","TYPE","AMOUNT","BALANCE"`, lines[0])
}

func TestLedgerCSVFilename(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "transactions_2025-03-15.csv", LedgerCSVFilename(now))
}
