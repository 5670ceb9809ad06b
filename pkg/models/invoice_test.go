package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geninv/pkg/models"
)

func item(sku, info string, qty int, unitPrice string) models.InvoiceItem {
	return models.InvoiceItem{
		ItemSKU:   sku,
		ItemInfo:  info,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func testCompany(id, name string) models.Company {
	return models.Company{
		CompanyID:   id,
		CompanyName: name,
		PhoneNumber: "+1-555-123-4567",
		Email:       "contact@testcompany.com",
		Website:     "https://testcompany.com",
		BillingAddress: &models.Address{
			AddressLine1: "789 Elm St",
			AddressLine2: "Apt 5B",
			City:         "Toronto",
			Province:     "ON",
			PostalCode:   "M5A 1A1",
			Country:      "Canada",
		},
	}
}

func TestInvoiceItemRecalculateTotals(t *testing.T) {
	i := item("ABCDEF123", "Widget", 3, "19.99")
	i.RecalculateTotals()
	assert.Equal(t, "59.97", i.TotalPrice.StringFixed(2))
}

func TestInvoiceTotalsKnownScenario(t *testing.T) {
	// Two companies, two items: 10 @ $10.00 and 20 @ $20.00.
	inv := models.NewInvoice("INV-000001",
		testCompany("TEST1", "Test Company 1"),
		testCompany("TEST2", "Test Company 2"),
		[]models.InvoiceItem{
			item("ABCD1X123", "Widget Description 1", 10, "10.00"),
			item("ABCD2X123", "Widget Description 2", 20, "20.00"),
		},
	)

	assert.Equal(t, "500.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "65.00", inv.TaxTotal.StringFixed(2))
	assert.Equal(t, "565.00", inv.Total.StringFixed(2))
}

func TestInvoiceTotalsIdentities(t *testing.T) {
	inv := models.NewInvoice("INV-000002",
		testCompany("TEST1", "Test Company 1"),
		testCompany("TEST2", "Test Company 2"),
		[]models.InvoiceItem{
			item("AAAAAA001", "First", 7, "3.33"),
			item("BBBBBB002", "Second", 1, "999.95"),
			item("CCCCCC003", "Third", 12, "0.49"),
		},
	)

	assert.True(t, inv.Total.Equal(inv.Subtotal.Add(inv.TaxTotal)),
		"total must equal subtotal plus tax")
	assert.True(t, inv.TaxTotal.Equal(inv.Subtotal.Mul(inv.TaxRate).Round(2)),
		"tax total must equal subtotal times tax rate")

	expected := decimal.Zero
	for _, li := range inv.LineItems {
		expected = expected.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	assert.True(t, inv.Subtotal.Equal(expected.Round(2)),
		"subtotal must equal the sum of line totals")
}

func TestInvoiceTotalsIndependentOfItemOrder(t *testing.T) {
	items := []models.InvoiceItem{
		item("AAAAAA001", "First", 2, "10.50"),
		item("BBBBBB002", "Second", 5, "4.20"),
		item("CCCCCC003", "Third", 1, "300.00"),
	}
	reversed := []models.InvoiceItem{items[2], items[1], items[0]}

	a := models.NewInvoice("INV-1", testCompany("TEST1", "A"), testCompany("TEST2", "B"), items)
	b := models.NewInvoice("INV-2", testCompany("TEST1", "A"), testCompany("TEST2", "B"), reversed)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxTotal.Equal(b.TaxTotal))
	assert.True(t, a.Total.Equal(b.Total))
}

func TestInvoiceDefaults(t *testing.T) {
	inv := models.NewInvoice("INV-000003",
		testCompany("TEST1", "A"), testCompany("TEST2", "B"), nil)

	require.Equal(t, models.DefaultPaymentTermsDays, inv.PaymentTerms)
	assert.Equal(t, inv.IssueDate.AddDate(0, 0, inv.PaymentTerms), inv.DueDate)
	assert.Equal(t, models.CAD, inv.Currency)
	assert.Equal(t, "0.13", inv.TaxRate.String())
	assert.True(t, inv.Total.IsZero())
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00 CAD"},
		{"5.5", "$5.50 CAD"},
		{"1234.56", "$1,234.56 CAD"},
		{"1234567.89", "$1,234,567.89 CAD"},
		{"-42.10", "-$42.10 CAD"},
	}
	for _, tt := range tests {
		got := models.FormatMoney(decimal.RequireFromString(tt.amount), models.CAD)
		assert.Equal(t, tt.want, got, "amount %s", tt.amount)
	}
}
