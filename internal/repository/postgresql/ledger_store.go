package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/retail-hr/internal/pkg/database"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/jackc/pgx/v5"
)

const createLedgersTable = `
	CREATE TABLE IF NOT EXISTS ledgers (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		version    BIGINT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type ledgerStoreImpl struct {
	db *database.DB
}

// NewLedgerStore returns a store.Store backed by the ledgers table.
func NewLedgerStore(db *database.DB) store.Store {
	return &ledgerStoreImpl{db: db}
}

// Migrate creates the ledgers table when missing.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, createLedgersTable); err != nil {
		return fmt.Errorf("failed to create ledgers table: %w", err)
	}
	return nil
}

// Load implements store.Store.
func (s *ledgerStoreImpl) Load(ctx context.Context, key string) ([]byte, int64, error) {
	q := GetQuerier(ctx, s.db)

	var (
		data    []byte
		version int64
	)
	err := q.QueryRow(ctx, `SELECT value, version FROM ledgers WHERE key = $1`, key).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, store.ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to load ledger %s: %w", key, err)
	}
	return data, version, nil
}

// Save implements store.Store.
func (s *ledgerStoreImpl) Save(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	var newVersion int64

	err := WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		var current int64
		err := tx.QueryRow(ctx, `SELECT version FROM ledgers WHERE key = $1 FOR UPDATE`, key).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to lock ledger %s: %w", key, err)
		}
		if current != expectedVersion {
			newVersion = current
			return store.ErrVersionConflict
		}

		query := `
			INSERT INTO ledgers (key, value, version, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value, version = EXCLUDED.version, updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, query, key, data, current+1); err != nil {
			return fmt.Errorf("failed to save ledger %s: %w", key, err)
		}
		newVersion = current + 1
		return nil
	})
	if err != nil {
		return newVersion, err
	}
	return newVersion, nil
}
