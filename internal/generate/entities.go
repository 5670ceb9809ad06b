package generate

import (
	"context"
	"errors"
	"fmt"

	"geninv/internal/store"
	"geninv/pkg/models"
)

// ErrInsufficientAddresses is returned when company generation cannot assign
// address references because fewer than two addresses are stored.
var ErrInsufficientAddresses = errors.New("company generation needs at least 2 stored addresses")

const arrayInstruction = "Respond with a JSON array of objects only, no prose and no wrapper object. "

// GenerateAddresses generates one batch of Canadian postal addresses and
// persists the non-duplicate ones.
func GenerateAddresses(ctx context.Context, st *store.Store, gen TextGenerator, batchSize int) (Report, error) {
	lines, err := st.AddressLines(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read existing addresses: %w", err)
	}

	spec := BatchSpec{
		Kind:      "address",
		Requested: batchSize,
		SystemPrompt: "You are creative synthetic data generation assistant. " +
			"Your goal in life is to generate unique realistic postal addresses for the Canadian postal system. ",
		UserPrompt: fmt.Sprintf(
			"Generate %d unique Canadian postal addresses. "+
				arrayInstruction+
				"Use this JSON schema for each address: <json_schema>%s</json_schema>. "+
				"Do not use address_line1 values that are present in the database. "+
				"Here is the list of address_line1 values in the current database: <database_data>%s</database_data>. ",
			batchSize, models.AddressSchema, exclusionJSON(lines)),
	}

	return RunBatch(ctx, gen, spec, validateAddress, func(ctx context.Context, a models.Address) error {
		return st.InsertAddress(ctx, a)
	})
}

// GenerateCompanies generates one batch of company profiles, assigns each a
// billing and a shipping address sampled from storage, and persists the
// non-duplicate ones. Fails up front when fewer than 2 addresses exist.
func GenerateCompanies(ctx context.Context, st *store.Store, gen TextGenerator, batchSize int) (Report, error) {
	if pool, err := st.RandomAddresses(ctx, 2); err != nil {
		return Report{}, fmt.Errorf("failed to read address pool: %w", err)
	} else if len(pool) < 2 {
		return Report{}, ErrInsufficientAddresses
	}

	identities, err := st.CompanyIdentities(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read existing companies: %w", err)
	}

	spec := BatchSpec{
		Kind:      "company",
		Requested: batchSize,
		SystemPrompt: "You are creative synthetic data generation assistant. " +
			"Your goal in life is to generate unique realistic Company profile data. ",
		UserPrompt: fmt.Sprintf(
			"Generate %d unique Company profiles. "+
				arrayInstruction+
				"Use this JSON schema for each Company profile: <json_schema>%s</json_schema>. "+
				"Do not use company_id or company_name values that are present in the database. "+
				"Here is the list of companies in the current database: <database_data>%s</database_data>. ",
			batchSize, models.CompanySchema, exclusionJSON(identities)),
	}

	return RunBatch(ctx, gen, spec, validateCompany, func(ctx context.Context, c models.Company) error {
		addrs, err := st.RandomAddresses(ctx, 2)
		if err != nil {
			return fmt.Errorf("failed to sample addresses: %w", err)
		}
		if len(addrs) < 2 {
			return ErrInsufficientAddresses
		}
		shippingID := addrs[1].ID
		return st.InsertCompany(ctx, c, addrs[0].ID, &shippingID)
	})
}

// GenerateInvoiceItems generates one batch of invoice line items and
// persists the non-duplicate ones.
func GenerateInvoiceItems(ctx context.Context, st *store.Store, gen TextGenerator, batchSize int) (Report, error) {
	identities, err := st.ItemIdentities(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read existing invoice items: %w", err)
	}

	spec := BatchSpec{
		Kind:      "invoice-item",
		Requested: batchSize,
		SystemPrompt: "You are creative synthetic data generation assistant. " +
			"Your goal in life is to generate unique realistic invoice line items for a computer equipment shop. ",
		UserPrompt: fmt.Sprintf(
			"Generate %d unique computer equipment invoice line items. "+
				arrayInstruction+
				"Use this JSON schema for each invoice line item: <json_schema>%s</json_schema>. "+
				"Do not use item_sku or item_info values that are present in the database. "+
				"Here is the list of item_sku and item_info in the current database: <database_data>%s</database_data>. ",
			batchSize, models.InvoiceItemSchema, exclusionJSON(identities)),
	}

	return RunBatch(ctx, gen, spec, validateInvoiceItem, func(ctx context.Context, i models.InvoiceItem) error {
		return st.InsertInvoiceItem(ctx, i)
	})
}

func validateAddress(a models.Address) error {
	if a.AddressLine1 == "" {
		return errors.New("address_line1 is required")
	}
	if a.City == "" || a.Province == "" || a.PostalCode == "" {
		return errors.New("city, province and postal_code are required")
	}
	return nil
}

func validateCompany(c models.Company) error {
	if c.CompanyID == "" {
		return errors.New("company_id is required")
	}
	if c.CompanyName == "" {
		return errors.New("company_name is required")
	}
	return nil
}

func validateInvoiceItem(i models.InvoiceItem) error {
	if i.ItemSKU == "" {
		return errors.New("item_sku is required")
	}
	if i.ItemInfo == "" {
		return errors.New("item_info is required")
	}
	if i.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if i.UnitPrice.IsNegative() || i.UnitPrice.IsZero() {
		return errors.New("unit_price must be positive")
	}
	return nil
}
