// Package store persists parsed holdings into a file-backed SQLite
// database. Rows are keyed by purchase identifier and written with upsert
// semantics: repeated runs over the same input leave the store's holding
// set identical, last run wins per purchase_id.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/quantfold/folio"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store owns the database handle for the duration of a run. The caller
// must Close it on every exit path.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and applies
// the schema migrations. Any failure here is fatal to the run: no
// partial-table state is acceptable.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", path, err)
	}
	// A single connection avoids SQLite locking issues.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store at %s is unreachable: %w", path, err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing schema at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// migrateUp applies the embedded migrations. Re-opening an existing store
// is a no-op (ErrNoChange).
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "folio", driver)
	if err != nil {
		return fmt.Errorf("creating migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

const upsertStockSQL = `
INSERT INTO stocks (purchase_id, symbol, quantity, purchase_price, current_price, purchase_date)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(purchase_id) DO UPDATE SET
	symbol = excluded.symbol,
	quantity = excluded.quantity,
	purchase_price = excluded.purchase_price,
	current_price = excluded.current_price,
	purchase_date = excluded.purchase_date`

const upsertBondSQL = `
INSERT INTO bonds (purchase_id, symbol, quantity, purchase_price, current_price, coupon, yield_rate, purchase_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(purchase_id) DO UPDATE SET
	symbol = excluded.symbol,
	quantity = excluded.quantity,
	purchase_price = excluded.purchase_price,
	current_price = excluded.current_price,
	coupon = excluded.coupon,
	yield_rate = excluded.yield_rate,
	purchase_date = excluded.purchase_date`

// UpsertHoldings writes both holding kinds in a single transaction,
// committed before returning. Duplicate purchase identifiers within the
// same batch are not an error: the later row wins.
func (s *Store) UpsertHoldings(ctx context.Context, stocks []folio.Investment, bonds []folio.Bond) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning upsert transaction: %w", err)
	}
	defer tx.Rollback()

	for _, inv := range stocks {
		if _, err := tx.ExecContext(ctx, upsertStockSQL,
			inv.PurchaseID, inv.Symbol, inv.Quantity,
			inv.PurchasePrice.InexactFloat64(), inv.CurrentPrice.InexactFloat64(),
			inv.PurchaseDate.String()); err != nil {
			return fmt.Errorf("upserting stock %s: %w", inv.PurchaseID, err)
		}
	}
	for _, b := range bonds {
		if _, err := tx.ExecContext(ctx, upsertBondSQL,
			b.PurchaseID, b.Symbol, b.Quantity,
			b.PurchasePrice.InexactFloat64(), b.CurrentPrice.InexactFloat64(),
			b.Coupon.InexactFloat64(), b.YieldRate.InexactFloat64(),
			b.PurchaseDate.String()); err != nil {
			return fmt.Errorf("upserting bond %s: %w", b.PurchaseID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}
	return nil
}

// UpsertStocks writes stock rows only.
func (s *Store) UpsertStocks(ctx context.Context, stocks []folio.Investment) error {
	return s.UpsertHoldings(ctx, stocks, nil)
}

// UpsertBonds writes bond rows only.
func (s *Store) UpsertBonds(ctx context.Context, bonds []folio.Bond) error {
	return s.UpsertHoldings(ctx, nil, bonds)
}

// StockRow is a stock holding as persisted.
type StockRow struct {
	PurchaseID    string
	Symbol        string
	Quantity      int64
	PurchasePrice float64
	CurrentPrice  float64
	PurchaseDate  string
}

// BondRow is a bond holding as persisted.
type BondRow struct {
	PurchaseID    string
	Symbol        string
	Quantity      int64
	PurchasePrice float64
	CurrentPrice  float64
	Coupon        float64
	YieldRate     float64
	PurchaseDate  string
}

// CountStocks returns the number of persisted stock rows.
func (s *Store) CountStocks(ctx context.Context) (int, error) {
	return s.count(ctx, "stocks")
}

// CountBonds returns the number of persisted bond rows.
func (s *Store) CountBonds(ctx context.Context) (int, error) {
	return s.count(ctx, "bonds")
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

// GetStock reads back a single stock row by purchase identifier.
func (s *Store) GetStock(ctx context.Context, purchaseID string) (StockRow, error) {
	var r StockRow
	err := s.db.QueryRowContext(ctx,
		"SELECT purchase_id, symbol, quantity, purchase_price, current_price, purchase_date FROM stocks WHERE purchase_id = ?",
		purchaseID).Scan(&r.PurchaseID, &r.Symbol, &r.Quantity, &r.PurchasePrice, &r.CurrentPrice, &r.PurchaseDate)
	if err != nil {
		return StockRow{}, fmt.Errorf("reading stock %s: %w", purchaseID, err)
	}
	return r, nil
}

// GetBond reads back a single bond row by purchase identifier.
func (s *Store) GetBond(ctx context.Context, purchaseID string) (BondRow, error) {
	var r BondRow
	err := s.db.QueryRowContext(ctx,
		"SELECT purchase_id, symbol, quantity, purchase_price, current_price, coupon, yield_rate, purchase_date FROM bonds WHERE purchase_id = ?",
		purchaseID).Scan(&r.PurchaseID, &r.Symbol, &r.Quantity, &r.PurchasePrice, &r.CurrentPrice, &r.Coupon, &r.YieldRate, &r.PurchaseDate)
	if err != nil {
		return BondRow{}, fmt.Errorf("reading bond %s: %w", purchaseID, err)
	}
	return r, nil
}

// ListStocks returns all persisted stock rows ordered by purchase identifier.
func (s *Store) ListStocks(ctx context.Context) ([]StockRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT purchase_id, symbol, quantity, purchase_price, current_price, purchase_date FROM stocks ORDER BY purchase_id")
	if err != nil {
		return nil, fmt.Errorf("listing stocks: %w", err)
	}
	defer rows.Close()
	var out []StockRow
	for rows.Next() {
		var r StockRow
		if err := rows.Scan(&r.PurchaseID, &r.Symbol, &r.Quantity, &r.PurchasePrice, &r.CurrentPrice, &r.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scanning stock row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListBonds returns all persisted bond rows ordered by purchase identifier.
func (s *Store) ListBonds(ctx context.Context) ([]BondRow, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT purchase_id, symbol, quantity, purchase_price, current_price, coupon, yield_rate, purchase_date FROM bonds ORDER BY purchase_id")
	if err != nil {
		return nil, fmt.Errorf("listing bonds: %w", err)
	}
	defer rows.Close()
	var out []BondRow
	for rows.Next() {
		var r BondRow
		if err := rows.Scan(&r.PurchaseID, &r.Symbol, &r.Quantity, &r.PurchasePrice, &r.CurrentPrice, &r.Coupon, &r.YieldRate, &r.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scanning bond row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
