package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code.
type Currency string

const CAD Currency = "CAD"

// DefaultPaymentTermsDays is the payment window applied when none is given.
const DefaultPaymentTermsDays = 30

// DefaultTaxRate is the tax applied to invoice line items (13% HST).
var DefaultTaxRate = decimal.RequireFromString("0.13")

// Invoice is a transient document assembled from stored companies and line
// items. It is never persisted; it exists in memory and as a rendered PDF.
// Subtotal, TaxTotal and Total are always recomputed from LineItems.
type Invoice struct {
	InvoiceNumber string
	IssueDate     time.Time
	PaymentTerms  int // days from issue to due date
	DueDate       time.Time
	Supplier      Company
	Customer      Company
	LineItems     []InvoiceItem
	TaxRate       decimal.Decimal
	Currency      Currency

	Subtotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
}

// NewInvoice builds an invoice with default terms, tax rate and currency and
// computes its totals.
func NewInvoice(number string, supplier, customer Company, items []InvoiceItem) *Invoice {
	now := time.Now()
	inv := &Invoice{
		InvoiceNumber: number,
		IssueDate:     now,
		PaymentTerms:  DefaultPaymentTermsDays,
		DueDate:       now.AddDate(0, 0, DefaultPaymentTermsDays),
		Supplier:      supplier,
		Customer:      customer,
		LineItems:     items,
		TaxRate:       DefaultTaxRate,
		Currency:      CAD,
	}
	inv.ComputeTotals()
	return inv
}

// ComputeTotals recomputes Subtotal, TaxTotal and Total from the line items.
func (inv *Invoice) ComputeTotals() {
	subtotal := decimal.Zero
	for i := range inv.LineItems {
		inv.LineItems[i].RecalculateTotals()
		subtotal = subtotal.Add(inv.LineItems[i].TotalPrice)
	}
	inv.Subtotal = subtotal.Round(2)
	inv.TaxTotal = inv.Subtotal.Mul(inv.TaxRate).Round(2)
	inv.Total = inv.Subtotal.Add(inv.TaxTotal).Round(2)
}

// SubtotalFormatted returns the subtotal as a display money string.
func (inv *Invoice) SubtotalFormatted() string {
	return FormatMoney(inv.Subtotal, inv.Currency)
}

// TaxTotalFormatted returns the tax total as a display money string.
func (inv *Invoice) TaxTotalFormatted() string {
	return FormatMoney(inv.TaxTotal, inv.Currency)
}

// TotalFormatted returns the grand total as a display money string.
func (inv *Invoice) TotalFormatted() string {
	return FormatMoney(inv.Total, inv.Currency)
}

// TaxRateFormatted returns the tax rate as a percentage, e.g. "13%".
func (inv *Invoice) TaxRateFormatted() string {
	return inv.TaxRate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// FormatMoney renders an amount as "$1,234.56 CAD".
func FormatMoney(amount decimal.Decimal, currency Currency) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + fracPart + " " + string(currency)
	if neg {
		out = "-" + out
	}
	return out
}
