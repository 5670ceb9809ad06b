// Package models holds the plain record types that double as the JSON wire
// schema requested from the text generation service. Storage rows live in
// internal/store and are mapped explicitly.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Address is a Canadian postal address. AddressLine1 is the identity field;
// storage enforces its uniqueness.
type Address struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// OneLine renders the address as a single display line.
func (a Address) OneLine() string {
	parts := []string{a.AddressLine1}
	if a.AddressLine2 != "" {
		parts = append(parts, a.AddressLine2)
	}
	parts = append(parts, a.City, a.Province, a.PostalCode, a.Country)
	return strings.Join(parts, ", ")
}

// Company is a synthetic company profile. CompanyID and CompanyName are the
// identity fields. The address references are assigned from existing stored
// addresses during persistence, never generated.
type Company struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Website     string `json:"website"`

	BillingAddress  *Address `json:"-"`
	ShippingAddress *Address `json:"-"`
}

// InvoiceItem is a single line item. ItemSKU and ItemInfo are the identity
// fields. TotalPrice is derived; call RecalculateTotals after any mutation.
type InvoiceItem struct {
	ItemSKU    string          `json:"item_sku"`
	ItemInfo   string          `json:"item_info"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// RecalculateTotals recomputes TotalPrice from Quantity and UnitPrice.
func (i *InvoiceItem) RecalculateTotals() {
	i.TotalPrice = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// UnitPriceFormatted returns the unit price as a display money string.
func (i InvoiceItem) UnitPriceFormatted(currency Currency) string {
	return FormatMoney(i.UnitPrice, currency)
}

// TotalPriceFormatted returns the line total as a display money string.
func (i InvoiceItem) TotalPriceFormatted(currency Currency) string {
	return FormatMoney(i.TotalPrice, currency)
}
