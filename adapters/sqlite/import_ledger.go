package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"greep/domain/importlog"
	"greep/ports"
)

// importLedger is a local, zero-setup record of confirmed imports.
type importLedger struct {
	db *sqlx.DB
}

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS import_log (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	total_rows INTEGER NOT NULL,
	inserted INTEGER NOT NULL,
	updated INTEGER NOT NULL,
	failed INTEGER NOT NULL,
	mappings_json TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`

// OpenLedger opens (and if needed creates) the sqlite import ledger at path.
func OpenLedger(path string) (ports.ImportLedger, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import ledger: %w", err)
	}
	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure import_log schema: %w", err)
	}
	return &importLedger{db: db}, nil
}

func (l *importLedger) Record(ctx context.Context, rec importlog.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := l.db.NamedExecContext(ctx, `INSERT INTO import_log (
		id, filename, total_rows, inserted, updated, failed, mappings_json, created_at
	) VALUES (
		:id, :filename, :total_rows, :inserted, :updated, :failed, :mappings_json, :created_at
	)`, rec)
	if err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

func (l *importLedger) List(ctx context.Context, limit int) ([]importlog.Record, error) {
	if limit <= 0 {
		limit = 50
	}

	var records []importlog.Record
	err := l.db.SelectContext(ctx, &records,
		`SELECT id, filename, total_rows, inserted, updated, failed, mappings_json, created_at
		 FROM import_log ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	return records, nil
}
