package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/subho2010/money-records-api/internal/domain/entity"
	"github.com/subho2010/money-records-api/internal/domain/enum"
)

// MaskCard renders the display form of a stored card number. Only the last
// four digits are ever persisted, so that is all the document can show.
func MaskCard(last4 string) string {
	return "**** **** **** " + last4
}

// MaskPhone hides all but the last three digits of a phone number
func MaskPhone(phone string) string {
	if len(phone) <= 3 {
		return phone
	}
	return strings.Repeat("*", len(phone)-3) + phone[len(phone)-3:]
}

// receiptLine is a rendered line item
type receiptLine struct {
	Description string
	Quantity    int
	Rate        string
	Amount      string
}

// receiptDocument is the data handed to the print template
type receiptDocument struct {
	StoreName     string
	StoreAddress  string
	StoreContact  string
	ReceiptNumber string
	Date          string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Currency      string
	Items         []receiptLine
	Total         string
	Notes         string
	GeneratedAt   string
}

// ReceiptHTML renders the printable receipt document. Payment details are
// shown masked: card numbers as their last four digits, phone numbers as
// their last three.
func ReceiptHTML(user *entity.User, receipt *entity.Receipt, now time.Time) ([]byte, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, err
	}

	doc := receiptDocument{
		ReceiptNumber: receipt.ReceiptNumber,
		Date:          receipt.Date.UTC().Format("02 Jan 2006"),
		CustomerName:  receipt.CustomerName,
		CustomerPhone: receipt.CustomerCountryCode + " " + receipt.CustomerContact,
		PaymentMethod: paymentMethod(receipt),
		Total:         receipt.ComputeTotal().StringFixed(2),
		Notes:         receipt.Notes,
		GeneratedAt:   now.UTC().Format("02 Jan 2006 15:04:05 MST"),
	}

	doc.Currency = "₹"
	if user.CurrencySymbol != nil && *user.CurrencySymbol != "" {
		doc.Currency = *user.CurrencySymbol
	}

	if user.StoreName != nil {
		doc.StoreName = *user.StoreName
	}
	if user.StoreAddress != nil {
		doc.StoreAddress = *user.StoreAddress
	}
	if user.StoreContact != nil {
		contact := *user.StoreContact
		if user.StoreCountryCode != nil {
			contact = *user.StoreCountryCode + " " + contact
		}
		doc.StoreContact = contact
	}

	for i := range receipt.Items {
		item := &receipt.Items[i]
		doc.Items = append(doc.Items, receiptLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Price.StringFixed(2),
			Amount:      item.Amount().StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paymentMethod(receipt *entity.Receipt) string {
	switch receipt.PaymentType {
	case enum.PaymentTypeCard:
		return fmt.Sprintf("Card (%s)", MaskCard(receipt.PaymentDetails))
	case enum.PaymentTypeOnline:
		return fmt.Sprintf("Online (%s)", MaskPhone(receipt.PaymentDetails))
	default:
		return "Cash"
	}
}

// receiptTemplate is the HTML template for the printable receipt
const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; color: #111827; margin: 0; padding: 24px; }
        .receipt { max-width: 560px; margin: 0 auto; border: 1px solid #e5e7eb; border-radius: 8px; padding: 24px; }
        .header { text-align: center; border-bottom: 1px dashed #d1d5db; padding-bottom: 12px; margin-bottom: 12px; }
        .header h1 { margin: 0; font-size: 20px; }
        .header p { margin: 2px 0; font-size: 12px; color: #6b7280; }
        .meta { display: flex; justify-content: space-between; font-size: 13px; margin-bottom: 12px; }
        table { width: 100%; border-collapse: collapse; font-size: 13px; }
        th { text-align: left; border-bottom: 1px solid #d1d5db; padding: 6px 4px; }
        td { padding: 6px 4px; border-bottom: 1px solid #f3f4f6; }
        .num { text-align: right; }
        .total td { border-top: 2px solid #111827; border-bottom: none; font-weight: bold; }
        .notes { margin-top: 16px; font-size: 12px; font-style: italic; }
        .footer { margin-top: 16px; text-align: center; font-size: 11px; color: #9ca3af; }
        @media print { body { padding: 0; } .receipt { border: none; } }
    </style>
</head>
<body>
    <div class="receipt">
        {{if .StoreName}}
        <div class="header">
            <h1>{{.StoreName}}</h1>
            {{if .StoreAddress}}<p>{{.StoreAddress}}</p>{{end}}
            {{if .StoreContact}}<p>{{.StoreContact}}</p>{{end}}
        </div>
        {{end}}
        <div class="meta">
            <div>
                <div><strong>Receipt No:</strong> {{.ReceiptNumber}}</div>
                <div><strong>Date:</strong> {{.Date}}</div>
                <div><strong>Payment:</strong> {{.PaymentMethod}}</div>
            </div>
            <div>
                <div><strong>Billed To:</strong> {{.CustomerName}}</div>
                <div>{{.CustomerPhone}}</div>
            </div>
        </div>
        <table>
            <thead>
                <tr><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
            </thead>
            <tbody>
                {{range .Items}}
                <tr><td>{{.Description}}</td><td class="num">{{.Quantity}}</td><td class="num">{{$.Currency}}{{.Rate}}</td><td class="num">{{$.Currency}}{{.Amount}}</td></tr>
                {{end}}
                <tr class="total"><td colspan="3">Total</td><td class="num">{{.Currency}}{{.Total}}</td></tr>
            </tbody>
        </table>
        {{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
        <div class="footer">Generated on {{.GeneratedAt}}</div>
    </div>
</body>
</html>
`
