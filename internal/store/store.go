// Package store is the storage gateway: a gorm-over-SQLite layer exposing
// insert-with-uniqueness-check, identity queries, random sampling and schema
// introspection. Uniqueness is enforced here, not by the generation layer;
// the generation workflow relies on ErrDuplicate for its per-record
// partial-success accounting.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"geninv/internal/logger"
	"geninv/pkg/models"
)

// ErrDuplicate reports that an insert violated a unique constraint.
var ErrDuplicate = errors.New("record violates a unique constraint")

type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (creating when absent) the SQLite database at path. The path
// may be a DSN such as "file::memory:?cache=shared" for tests.
func Open(path string) (*Store, error) {
	const op = "store.Open"

	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: failed to create database directory: %w", op, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	return &Store{
		db:  db,
		log: logger.WithComponent("store"),
	}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateSchema creates or migrates all tables.
func (s *Store) CreateSchema(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Address{}, &Company{}, &InvoiceItem{})
}

// DropSchema drops all tables. Companies first, they reference addresses.
func (s *Store) DropSchema(ctx context.Context) error {
	return s.db.WithContext(ctx).Migrator().DropTable(&Company{}, &InvoiceItem{}, &Address{})
}

// IsDuplicateErr reports whether err is a unique constraint violation.
// SQLite surfaces violations as textual errors, so the string check backs
// up gorm's translated error.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicate) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Store) create(ctx context.Context, record any) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if IsDuplicateErr(err) {
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return err
	}
	return nil
}

// InsertAddress persists one address. Returns ErrDuplicate when
// address_line1 already exists.
func (s *Store) InsertAddress(ctx context.Context, m models.Address) error {
	row := addressFromModel(m)
	return s.create(ctx, &row)
}

// InsertCompany persists one company with its address references. Returns
// ErrDuplicate when company_id or company_name already exists.
func (s *Store) InsertCompany(ctx context.Context, m models.Company, billingID uint, shippingID *uint) error {
	row := Company{
		CompanyID:         m.CompanyID,
		CompanyName:       m.CompanyName,
		PhoneNumber:       m.PhoneNumber,
		Email:             m.Email,
		Website:           m.Website,
		AddressBillingID:  billingID,
		AddressShippingID: shippingID,
	}
	return s.create(ctx, &row)
}

// InsertInvoiceItem persists one line item, recomputing its total first.
// Returns ErrDuplicate when item_sku or item_info already exists.
func (s *Store) InsertInvoiceItem(ctx context.Context, m models.InvoiceItem) error {
	row := itemFromModel(m)
	return s.create(ctx, &row)
}

// AddressLines returns every stored address_line1 value, the exclusion list
// for address generation.
func (s *Store) AddressLines(ctx context.Context) ([]string, error) {
	var lines []string
	err := s.db.WithContext(ctx).Model(&Address{}).Pluck("address_line1", &lines).Error
	return lines, err
}

// CompanyIdentities returns every stored (company_id, company_name) pair.
func (s *Store) CompanyIdentities(ctx context.Context) ([]CompanyIdentity, error) {
	var ids []CompanyIdentity
	err := s.db.WithContext(ctx).Model(&Company{}).
		Select("company_id", "company_name").
		Find(&ids).Error
	return ids, err
}

// ItemIdentities returns every stored (item_sku, item_info) pair.
func (s *Store) ItemIdentities(ctx context.Context) ([]ItemIdentity, error) {
	var ids []ItemIdentity
	err := s.db.WithContext(ctx).Model(&InvoiceItem{}).
		Select("item_sku", "item_info").
		Find(&ids).Error
	return ids, err
}

// ListAddresses returns all stored addresses.
func (s *Store) ListAddresses(ctx context.Context) ([]Address, error) {
	var rows []Address
	err := s.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// ListCompanies returns all stored companies with their addresses resolved.
func (s *Store) ListCompanies(ctx context.Context) ([]Company, error) {
	var rows []Company
	err := s.db.WithContext(ctx).
		Preload("BillingAddress").
		Preload("ShippingAddress").
		Order("id").
		Find(&rows).Error
	return rows, err
}

// ListInvoiceItems returns all stored line items.
func (s *Store) ListInvoiceItems(ctx context.Context) ([]InvoiceItem, error) {
	var rows []InvoiceItem
	err := s.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// RandomAddresses samples up to n addresses uniformly without replacement.
func (s *Store) RandomAddresses(ctx context.Context, n int) ([]Address, error) {
	var rows []Address
	err := s.db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&rows).Error
	return rows, err
}

// RandomCompanies samples up to n companies uniformly without replacement,
// with their addresses resolved.
func (s *Store) RandomCompanies(ctx context.Context, n int) ([]Company, error) {
	var rows []Company
	err := s.db.WithContext(ctx).
		Preload("BillingAddress").
		Preload("ShippingAddress").
		Order("RANDOM()").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

// RandomInvoiceItems samples up to n line items uniformly without replacement.
func (s *Store) RandomInvoiceItems(ctx context.Context, n int) ([]InvoiceItem, error) {
	var rows []InvoiceItem
	err := s.db.WithContext(ctx).Order("RANDOM()").Limit(n).Find(&rows).Error
	return rows, err
}

// TableStats is a row count for one table.
type TableStats struct {
	Table string
	Rows  int64
}

// Stats returns per-table row counts. Missing tables count as zero.
func (s *Store) Stats(ctx context.Context) ([]TableStats, error) {
	stats := make([]TableStats, 0, 3)
	for _, m := range []any{&Address{}, &Company{}, &InvoiceItem{}} {
		name := tableName(m)
		if !s.db.WithContext(ctx).Migrator().HasTable(m) {
			stats = append(stats, TableStats{Table: name})
			continue
		}
		var count int64
		if err := s.db.WithContext(ctx).Model(m).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		stats = append(stats, TableStats{Table: name, Rows: count})
	}
	return stats, nil
}

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
	Unique   bool
}

// TableSchema describes one table: its columns and index names.
type TableSchema struct {
	Name    string
	Columns []ColumnInfo
	Indexes []string
}

// Schema reflects the current database schema for display. Read-only.
func (s *Store) Schema(ctx context.Context) ([]TableSchema, error) {
	migrator := s.db.WithContext(ctx).Migrator()

	var schemas []TableSchema
	for _, m := range []any{&Address{}, &Company{}, &InvoiceItem{}} {
		name := tableName(m)
		if !migrator.HasTable(m) {
			continue
		}

		cols, err := migrator.ColumnTypes(m)
		if err != nil {
			return nil, fmt.Errorf("failed to read columns of %s: %w", name, err)
		}
		ts := TableSchema{Name: name}
		for _, col := range cols {
			nullable, _ := col.Nullable()
			unique, _ := col.Unique()
			ts.Columns = append(ts.Columns, ColumnInfo{
				Name:     col.Name(),
				Type:     col.DatabaseTypeName(),
				Nullable: nullable,
				Unique:   unique,
			})
		}

		if indexes, err := migrator.GetIndexes(m); err == nil {
			for _, idx := range indexes {
				ts.Indexes = append(ts.Indexes, idx.Name())
			}
		}

		schemas = append(schemas, ts)
	}
	return schemas, nil
}

func tableName(m any) string {
	switch m.(type) {
	case *Address:
		return Address{}.TableName()
	case *Company:
		return Company{}.TableName()
	case *InvoiceItem:
		return InvoiceItem{}.TableName()
	default:
		return ""
	}
}
