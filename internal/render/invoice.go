// Package render turns a composed invoice into a PDF byte stream.
package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"geninv/pkg/models"
)

const dateLayout = "2006-01-02"

// PDF renders the invoice document. The caller owns writing the bytes to
// <invoice_number>.pdf.
func PDF(inv *models.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Invoice meta
	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+inv.InvoiceNumber, props.Text{Top: 0}),
			text.New("Date of issue: "+inv.IssueDate.Format(dateLayout), props.Text{Top: 4}),
			text.New("Date due: "+inv.DueDate.Format(dateLayout), props.Text{Top: 8}),
			text.New(fmt.Sprintf("Payment terms: %d days", inv.PaymentTerms), props.Text{Top: 12}),
		),
		col.New(6),
	)

	// Parties
	m.AddRow(40,
		addressCol("From", inv.Supplier, inv.Supplier.BillingAddress),
		addressCol("Bill to", inv.Customer, inv.Customer.BillingAddress),
		addressCol("Ship to", inv.Customer, inv.Customer.ShippingAddress),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(2, "SKU", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range inv.LineItems {
		m.AddRow(8,
			text.NewCol(2, item.ItemSKU, props.Text{Size: 9}),
			text.NewCol(4, item.ItemInfo, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPriceFormatted(inv.Currency), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.TotalPriceFormatted(inv.Currency), props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Totals
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, inv.SubtotalFormatted(), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Tax ("+inv.TaxRateFormatted()+")", props.Text{Size: 9}),
		text.NewCol(2, inv.TaxTotalFormatted(), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, inv.TotalFormatted(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addressCol(title string, company models.Company, addr *models.Address) core.Col {
	c := col.New(4).Add(
		text.New(title, props.Text{Style: fontstyle.Bold}),
		text.New(company.CompanyName, props.Text{Top: 5, Size: 9}),
	)
	if addr != nil {
		c.Add(
			text.New(addr.AddressLine1, props.Text{Top: 9, Size: 9}),
			text.New(addr.AddressLine2, props.Text{Top: 13, Size: 9}),
			text.New(addr.City+", "+addr.Province+" "+addr.PostalCode, props.Text{Top: 17, Size: 9}),
			text.New(addr.Country, props.Text{Top: 21, Size: 9}),
		)
	}
	c.Add(
		text.New(company.Email, props.Text{Top: 27, Size: 9}),
		text.New(company.PhoneNumber, props.Text{Top: 31, Size: 9}),
	)
	return c
}
