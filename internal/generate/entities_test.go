package generate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geninv/internal/generate"
	"geninv/internal/store"
	"geninv/pkg/models"
)

// fakeGenerator is a stubbed generation capability.
type fakeGenerator struct {
	response string
	err      error
	lastReq  generate.Request
}

func (f *fakeGenerator) GenerateRecords(ctx context.Context, req generate.Request) (string, error) {
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.CreateSchema(context.Background()))
	return st
}

func seedItem(t *testing.T, st *store.Store, sku, info string) {
	t.Helper()
	require.NoError(t, st.InsertInvoiceItem(context.Background(), models.InvoiceItem{
		ItemSKU:   sku,
		ItemInfo:  info,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
	}))
}

func TestGenerateInvoiceItemsCountsNewAndDuplicates(t *testing.T) {
	st := newTestStore(t)
	seedItem(t, st, "EXISTS0001", "Already stored item")

	gen := &fakeGenerator{response: `[
		{"item_sku": "EXISTS0001", "item_info": "Already stored item", "quantity": 2, "unit_price": 15.00},
		{"item_sku": "NEWSKU0001", "item_info": "Brand new item", "quantity": 1, "unit_price": 99.99}
	]`}

	report, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Generated)
	assert.Equal(t, 1, report.New)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, report.Generated, report.New+report.Duplicates)
}

func TestGenerateInvoiceItemsAllDuplicates(t *testing.T) {
	st := newTestStore(t)
	seedItem(t, st, "AAAAAA001", "First")
	seedItem(t, st, "BBBBBB002", "Second")

	// Capability returns exactly the identities already in storage.
	gen := &fakeGenerator{response: `[
		{"item_sku": "AAAAAA001", "item_info": "First", "quantity": 1, "unit_price": 1.00},
		{"item_sku": "BBBBBB002", "item_info": "Second", "quantity": 1, "unit_price": 1.00}
	]`}

	report, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, report.New)
	assert.Equal(t, 2, report.Duplicates)
}

func TestGenerateInvoiceItemsExclusionListInPrompt(t *testing.T) {
	st := newTestStore(t)
	seedItem(t, st, "EXCLUDE999", "Excluded item description")

	gen := &fakeGenerator{response: `[]`}
	_, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 5)
	require.NoError(t, err)

	assert.Contains(t, gen.lastReq.UserPrompt, "EXCLUDE999")
	assert.Contains(t, gen.lastReq.UserPrompt, "Excluded item description")
	assert.Equal(t, generate.SamplingTemperature, gen.lastReq.Temperature)
}

func TestGenerateCapabilityFailureYieldsZeroRecords(t *testing.T) {
	st := newTestStore(t)

	gen := &fakeGenerator{err: errors.New("service unavailable")}
	report, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 5)
	require.Error(t, err)

	assert.Equal(t, 0, report.Generated)
	assert.Equal(t, 0, report.New)

	rows, listErr := st.ListInvoiceItems(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, rows)
}

func TestGenerateMalformedResponseYieldsZeroRecords(t *testing.T) {
	st := newTestStore(t)

	gen := &fakeGenerator{response: "sorry, I cannot do that"}
	report, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 5)
	require.Error(t, err)
	assert.Equal(t, 0, report.New)
}

func TestGenerateInvalidRecordAbortsBatch(t *testing.T) {
	st := newTestStore(t)

	gen := &fakeGenerator{response: `[
		{"item_sku": "GOODSKU001", "item_info": "Fine", "quantity": 1, "unit_price": 5.00},
		{"item_sku": "BADSKU0001", "item_info": "Negative quantity", "quantity": -4, "unit_price": 5.00}
	]`}

	_, err := generate.GenerateInvoiceItems(context.Background(), st, gen, 2)
	require.Error(t, err)

	rows, listErr := st.ListInvoiceItems(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, rows, "an invalid record aborts the whole batch")
}

func TestGenerateAddresses(t *testing.T) {
	st := newTestStore(t)

	gen := &fakeGenerator{response: `[
		{"address_line1": "12 Bay St", "city": "Toronto", "province": "ON", "postal_code": "M5J 2R8", "country": "Canada"},
		{"address_line1": "800 Rue Sainte-Catherine", "address_line2": "Suite 300", "city": "Montreal", "province": "QC", "postal_code": "H3B 1A1", "country": "Canada"}
	]`}

	report, err := generate.GenerateAddresses(context.Background(), st, gen, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, report.New)
	assert.Equal(t, 0, report.Duplicates)

	lines, err := st.AddressLines(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"12 Bay St", "800 Rue Sainte-Catherine"}, lines)
}

func TestGenerateCompaniesRequiresAddressPool(t *testing.T) {
	st := newTestStore(t)

	gen := &fakeGenerator{response: `[]`}
	_, err := generate.GenerateCompanies(context.Background(), st, gen, 5)
	assert.ErrorIs(t, err, generate.ErrInsufficientAddresses)
}

func TestGenerateCompaniesAssignsAddressReferences(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, line1 := range []string{"1 First Ave", "2 Second Ave", "3 Third Ave"} {
		require.NoError(t, st.InsertAddress(ctx, models.Address{
			AddressLine1: line1,
			City:         "Ottawa",
			Province:     "ON",
			PostalCode:   "K1A 0A6",
			Country:      "Canada",
		}))
	}

	gen := &fakeGenerator{response: `[
		{"company_id": "NORTHC0042", "company_name": "North Computing", "phone_number": "+1 (613) 555-0042", "email": "hello@northcomputing.example", "website": "https://northcomputing.example"}
	]`}

	report, err := generate.GenerateCompanies(ctx, st, gen, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, report.New)

	rows, err := st.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].BillingAddress, "billing address must be assigned")
	require.NotNil(t, rows[0].ShippingAddress, "shipping address must be assigned")
}

func TestGenerateCompanyDuplicateCountsOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, line1 := range []string{"1 First Ave", "2 Second Ave"} {
		require.NoError(t, st.InsertAddress(ctx, models.Address{
			AddressLine1: line1, City: "Ottawa", Province: "ON", PostalCode: "K1A 0A6", Country: "Canada",
		}))
	}

	companyJSON := `{"company_id": "DUPEID0001", "company_name": "Dupe Inc", "phone_number": "+1 (613) 555-0001", "email": "a@dupe.example", "website": "https://dupe.example"}`
	gen := &fakeGenerator{response: "[" + companyJSON + "]"}

	first, err := generate.GenerateCompanies(ctx, st, gen, 1)
	require.NoError(t, err)
	require.Equal(t, 1, first.New)

	second, err := generate.GenerateCompanies(ctx, st, gen, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, second.New)
	assert.Equal(t, 1, second.Duplicates, "duplicate counter increments by exactly 1")
}
