// Package compose assembles transient invoices from persisted data. No
// generation capability is involved; composition only samples and computes.
package compose

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"geninv/internal/store"
	"geninv/pkg/models"
)

// MaxLineItems bounds the number of line items sampled per invoice.
const MaxLineItems = 10

var (
	// ErrInsufficientCompanies is returned when fewer than 2 companies are
	// stored; an invoice needs a distinct supplier and customer.
	ErrInsufficientCompanies = errors.New("invoice composition needs at least 2 stored companies")

	// ErrNoInvoiceItems is returned when no line items are stored.
	ErrNoInvoiceItems = errors.New("invoice composition needs at least 1 stored invoice item")
)

// Compose samples 2 distinct companies (supplier, customer) and 1 to 10 line
// items without replacement, then builds an invoice with recomputed totals.
func Compose(ctx context.Context, st *store.Store) (*models.Invoice, error) {
	companies, err := st.RandomCompanies(ctx, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to sample companies: %w", err)
	}
	if len(companies) < 2 {
		return nil, ErrInsufficientCompanies
	}

	itemCount := rand.IntN(MaxLineItems) + 1
	rows, err := st.RandomInvoiceItems(ctx, itemCount)
	if err != nil {
		return nil, fmt.Errorf("failed to sample invoice items: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoInvoiceItems
	}

	items := make([]models.InvoiceItem, len(rows))
	for i, row := range rows {
		items[i] = row.ToModel()
	}

	return models.NewInvoice(
		NewInvoiceNumber(),
		companies[0].ToModel(),
		companies[1].ToModel(),
		items,
	), nil
}

// NewInvoiceNumber produces a human-readable invoice number, e.g. INV-042137.
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%06d", rand.IntN(1_000_000))
}
