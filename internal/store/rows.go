package store

import (
	"github.com/shopspring/decimal"

	"geninv/pkg/models"
)

// Row types carry the identity and uniqueness metadata the storage layer
// enforces. They are mapped explicitly to and from the wire records in
// pkg/models.

type Address struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	AddressLine1 string `gorm:"uniqueIndex;not null"`
	AddressLine2 string
	City         string `gorm:"not null"`
	Province     string `gorm:"not null"`
	PostalCode   string `gorm:"not null"`
	Country      string `gorm:"not null;default:Canada"`
}

func (Address) TableName() string { return "addresses" }

type Company struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	CompanyID   string `gorm:"uniqueIndex;not null"`
	CompanyName string `gorm:"uniqueIndex;not null"`
	PhoneNumber string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Website     string `gorm:"not null"`

	AddressBillingID  uint  `gorm:"not null"`
	AddressShippingID *uint // optional

	BillingAddress  *Address `gorm:"foreignKey:AddressBillingID"`
	ShippingAddress *Address `gorm:"foreignKey:AddressShippingID"`
}

func (Company) TableName() string { return "companies" }

type InvoiceItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ItemSKU    string          `gorm:"uniqueIndex;not null"`
	ItemInfo   string          `gorm:"uniqueIndex;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }

// CompanyIdentity is the pair of identity-field values used in exclusion lists.
type CompanyIdentity struct {
	CompanyID   string
	CompanyName string
}

// ItemIdentity is the pair of identity-field values used in exclusion lists.
type ItemIdentity struct {
	ItemSKU  string
	ItemInfo string
}

func addressFromModel(m models.Address) Address {
	country := m.Country
	if country == "" {
		country = "Canada"
	}
	return Address{
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		City:         m.City,
		Province:     m.Province,
		PostalCode:   m.PostalCode,
		Country:      country,
	}
}

func (a Address) ToModel() models.Address {
	return models.Address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		Province:     a.Province,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

func (c Company) ToModel() models.Company {
	m := models.Company{
		CompanyID:   c.CompanyID,
		CompanyName: c.CompanyName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Website:     c.Website,
	}
	if c.BillingAddress != nil {
		billing := c.BillingAddress.ToModel()
		m.BillingAddress = &billing
	}
	if c.ShippingAddress != nil {
		shipping := c.ShippingAddress.ToModel()
		m.ShippingAddress = &shipping
	}
	return m
}

func itemFromModel(m models.InvoiceItem) InvoiceItem {
	m.RecalculateTotals()
	return InvoiceItem{
		ItemSKU:    m.ItemSKU,
		ItemInfo:   m.ItemInfo,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		TotalPrice: m.TotalPrice,
	}
}

func (i InvoiceItem) ToModel() models.InvoiceItem {
	return models.InvoiceItem{
		ItemSKU:    i.ItemSKU,
		ItemInfo:   i.ItemInfo,
		Quantity:   i.Quantity,
		UnitPrice:  i.UnitPrice,
		TotalPrice: i.TotalPrice,
	}
}
