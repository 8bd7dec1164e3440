// Package load creates the relational store and bulk-loads the generated CSV
// artifacts into it, verifying referential integrity afterwards.
package load

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/oakline/shopdata/internal/dataset"
)

// ErrIntegrity indicates the post-load verification found orphaned rows or a
// row-count mismatch.
var ErrIntegrity = errors.New("post-load integrity check failed")

// tableSpec ties a table to its CSV artifact and insert statement. The row
// function parses one CSV record into bind arguments, failing on any
// malformed field.
type tableSpec struct {
	name   string
	file   string
	header []string
	insert string
	row    func(rec []string) ([]any, error)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

var tables = []tableSpec{
	{
		name:   "customers",
		file:   dataset.CustomersFile,
		header: dataset.CustomersHeader,
		insert: `INSERT INTO customers (customer_id, first_name, last_name, email, phone,
			address, city, state, zip_code, country, date_registered, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row: func(rec []string) ([]any, error) {
			c, err := dataset.ParseCustomer(rec)
			if err != nil {
				return nil, err
			}
			return []any{
				c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
				c.City, c.State, c.ZipCode, c.Country,
				c.DateRegistered.Format(dataset.DateLayout), boolInt(c.IsActive),
			}, nil
		},
	},
	{
		name:   "products",
		file:   dataset.ProductsFile,
		header: dataset.ProductsHeader,
		insert: `INSERT INTO products (product_id, product_name, category, description,
			price, cost, stock_quantity, sku, brand, created_date, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row: func(rec []string) ([]any, error) {
			p, err := dataset.ParseProduct(rec)
			if err != nil {
				return nil, err
			}
			return []any{
				p.ID, p.Name, p.Category, p.Description, p.Price, p.Cost,
				p.Stock, p.SKU, p.Brand,
				p.CreatedDate.Format(dataset.DateLayout), boolInt(p.IsActive),
			}, nil
		},
	},
	{
		name:   "orders",
		file:   dataset.OrdersFile,
		header: dataset.OrdersHeader,
		insert: `INSERT INTO orders (order_id, customer_id, order_date, status,
			shipping_address, shipping_city, shipping_state, shipping_zip,
			shipping_country, shipping_cost, tax_amount, subtotal, total_amount)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row: func(rec []string) ([]any, error) {
			o, err := dataset.ParseOrder(rec)
			if err != nil {
				return nil, err
			}
			return []any{
				o.ID, o.CustomerID, o.OrderDate.Format(dataset.TimestampLayout),
				string(o.Status), o.ShippingAddress, o.ShippingCity,
				o.ShippingState, o.ShippingZip, o.ShippingCountry,
				o.ShippingCost, o.TaxAmount, o.Subtotal, o.TotalAmount,
			}, nil
		},
	},
	{
		name:   "order_items",
		file:   dataset.OrderItemsFile,
		header: dataset.OrderItemsHeader,
		insert: `INSERT INTO order_items (item_id, order_id, product_id, quantity,
			unit_price, discount, subtotal)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row: func(rec []string) ([]any, error) {
			i, err := dataset.ParseOrderItem(rec)
			if err != nil {
				return nil, err
			}
			return []any{
				i.ID, i.OrderID, i.ProductID, i.Quantity, i.UnitPrice,
				i.Discount, i.Subtotal,
			}, nil
		},
	},
	{
		name:   "payments",
		file:   dataset.PaymentsFile,
		header: dataset.PaymentsHeader,
		insert: `INSERT INTO payments (payment_id, order_id, payment_date,
			payment_method, amount, status, transaction_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row: func(rec []string) ([]any, error) {
			p, err := dataset.ParsePayment(rec)
			if err != nil {
				return nil, err
			}
			return []any{
				p.ID, p.OrderID, p.PaymentDate.Format(dataset.TimestampLayout),
				p.Method, p.Amount, string(p.Status), p.TransactionID,
			}, nil
		},
	},
}

// Open opens the single-file store with foreign key enforcement on.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// A single writer; more connections only invite SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Recreate removes any prior database file and opens a fresh one. The drop
// is destructive and idempotent.
func Recreate(path string) (*sql.DB, error) {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("remove %s: %w", p, err)
		}
	}
	return Open(path)
}

// Loader bulk-loads the CSV artifacts into the store.
type Loader struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Loader {
	return &Loader{db: db, logger: logger}
}

// CreateSchema creates the five tables in dependency order.
func (l *Loader) CreateSchema(ctx context.Context) error {
	for _, t := range schema {
		if _, err := l.db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		l.logger.Info("created table", slog.String("table", t.name))
	}
	return nil
}

// LoadAll loads every table from dir and then verifies integrity. Table
// loads are independent: a malformed row aborts only that table, and the
// remaining tables are still attempted before the run fails.
func (l *Loader) LoadAll(ctx context.Context, dir string) error {
	counts := make(map[string]int, len(tables))
	var failed []string

	for _, spec := range tables {
		n, err := l.loadTable(ctx, dir, spec)
		if err != nil {
			if errors.Is(err, dataset.ErrMissingInput) {
				return err
			}
			l.logger.Error("table load failed",
				slog.String("table", spec.name), slog.Any("error", err))
			failed = append(failed, spec.name)
			continue
		}
		counts[spec.name] = n
		l.logger.Info("loaded table",
			slog.String("table", spec.name), slog.Int("rows", n))
	}

	if len(failed) > 0 {
		return fmt.Errorf("load failed for %d of %d tables: %v",
			len(failed), len(tables), failed)
	}
	return l.Verify(ctx, counts)
}

// loadTable reads one CSV artifact and inserts its rows inside a single
// transaction with a prepared statement. Any malformed or rejected row
// aborts the table with its row number.
func (l *Loader) loadTable(ctx context.Context, dir string, spec tableSpec) (n int, err error) {
	rows, err := dataset.ReadFile(filepath.Join(dir, spec.file), spec.header)
	if err != nil {
		return 0, err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin %s load: %w", spec.name, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, spec.insert)
	if err != nil {
		return 0, fmt.Errorf("prepare %s insert: %w", spec.name, err)
	}
	defer stmt.Close()

	for i, rec := range rows {
		args, err := spec.row(rec)
		if err != nil {
			return 0, fmt.Errorf("%s row %d: %w", spec.name, i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("%s row %d: insert: %w", spec.name, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s load: %w", spec.name, err)
	}
	return len(rows), nil
}

// Verify compares per-table row counts against the source files and checks
// that no FK value is orphaned.
func (l *Loader) Verify(ctx context.Context, wantCounts map[string]int) error {
	for _, spec := range tables {
		var got int
		if err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+spec.name).Scan(&got); err != nil {
			return fmt.Errorf("count %s: %w", spec.name, err)
		}
		if want := wantCounts[spec.name]; got != want {
			return fmt.Errorf("%w: table %s has %d rows, source file has %d",
				ErrIntegrity, spec.name, got, want)
		}
		l.logger.Info("verified row count",
			slog.String("table", spec.name), slog.Int("rows", got))
	}

	for _, check := range orphanChecks {
		var orphans int
		if err := l.db.QueryRowContext(ctx, check.query).Scan(&orphans); err != nil {
			return fmt.Errorf("orphan check %q: %w", check.label, err)
		}
		if orphans != 0 {
			return fmt.Errorf("%w: %d %s", ErrIntegrity, orphans, check.label)
		}
		l.logger.Info("verified", slog.String("check", check.label), slog.Int("orphans", orphans))
	}
	return nil
}

// Run is the whole loader stage: recreate the store, create the schema, load
// every artifact, verify.
func Run(ctx context.Context, dataDir, dbPath string, logger *slog.Logger) error {
	db, err := Recreate(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	loader := New(db, logger)
	if err := loader.CreateSchema(ctx); err != nil {
		return err
	}
	if err := loader.LoadAll(ctx, dataDir); err != nil {
		return err
	}
	logger.Info("database ready", slog.String("path", dbPath))
	return nil
}
