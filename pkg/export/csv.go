package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subho2010/money-records-api/internal/domain/entity"
)

// utf8BOM makes Excel detect the encoding correctly
const utf8BOM = "\uFEFF"

// csvHeader is the fixed header row, every field quoted
var csvHeader = []string{"DATE", "PARTICULARS", "TYPE", "AMOUNT", "BALANCE"}

// LedgerCSV renders a user's transactions as a CSV document. Transactions
// must be ordered oldest first; the BALANCE column is a running total
// recomputed by replaying them, not the cached account balance.
func LedgerCSV(transactions []entity.Transaction) []byte {
	var sb strings.Builder
	sb.WriteString(utf8BOM)
	writeRow(&sb, csvHeader)

	running := decimal.Zero
	for i := range transactions {
		t := &transactions[i]
		running = running.Add(t.Signed())
		writeRow(&sb, []string{
			t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			t.Particulars,
			t.Type.String(),
			t.Amount.StringFixed(2),
			running.StringFixed(2),
		})
	}

	return []byte(sb.String())
}

// LedgerCSVFilename returns the download filename for an export generated at
// the given time: transactions_{YYYY-MM-DD}.csv
func LedgerCSVFilename(now time.Time) string {
	return "transactions_" + now.UTC().Format("2006-01-02") + ".csv"
}

// writeRow writes one CSV row with every field quoted
func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}
