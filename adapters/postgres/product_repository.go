package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"greep/domain/product"
	"greep/ports"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) ports.ProductRepository {
	return &productRepository{db: db}
}

const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	sku TEXT,
	barcode TEXT NOT NULL DEFAULT '',
	price NUMERIC NOT NULL DEFAULT 0,
	cost_price NUMERIC NOT NULL DEFAULT 0,
	stock_quantity NUMERIC NOT NULL DEFAULT 0,
	min_stock_level NUMERIC NOT NULL DEFAULT 0,
	unit TEXT NOT NULL DEFAULT '',
	weight NUMERIC NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS products_sku_key ON products (sku) WHERE sku <> '';
`

// EnsureSchema creates the products table if it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, productsSchema); err != nil {
		return fmt.Errorf("failed to ensure products schema: %w", err)
	}
	return nil
}

const upsertQuery = `INSERT INTO products (
	id, name, category, sku, barcode, price, cost_price, stock_quantity,
	min_stock_level, unit, weight, description, is_active
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
ON CONFLICT (sku) WHERE sku <> '' DO UPDATE SET
	name = EXCLUDED.name,
	category = EXCLUDED.category,
	barcode = EXCLUDED.barcode,
	price = EXCLUDED.price,
	cost_price = EXCLUDED.cost_price,
	stock_quantity = EXCLUDED.stock_quantity,
	min_stock_level = EXCLUDED.min_stock_level,
	unit = EXCLUDED.unit,
	weight = EXCLUDED.weight,
	description = EXCLUDED.description,
	is_active = EXCLUDED.is_active,
	updated_at = now()
RETURNING (xmax = 0) AS inserted`

// BulkUpsert writes all drafts in a single transaction. Rows conflicting on
// SKU update the existing product; per-row failures are collected and do not
// abort the batch.
func (r *productRepository) BulkUpsert(ctx context.Context, drafts []product.Draft) (product.UpsertStats, error) {
	var stats product.UpsertStats
	if len(drafts) == 0 {
		return stats, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range drafts {
		id := d.ID
		if id == "" {
			id = uuid.New().String()
		}

		// Savepoint per row so one bad row does not poison the batch.
		if _, err := tx.ExecContext(ctx, "SAVEPOINT bulk_row"); err != nil {
			return stats, fmt.Errorf("failed to create savepoint: %w", err)
		}

		var inserted bool
		err := tx.QueryRowContext(ctx, upsertQuery,
			id, d.Name, d.Category, d.SKU, d.Barcode, d.Price, d.CostPrice,
			d.StockQuantity, d.MinStockLevel, d.Unit, d.Weight, d.Description,
			d.IsActive,
		).Scan(&inserted)
		if err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT bulk_row"); rbErr != nil {
				return stats, fmt.Errorf("failed to roll back row savepoint: %w", rbErr)
			}
			stats.Failed++
			stats.Errors = append(stats.Errors, product.RowError{
				Row:     d.RowIndex,
				Message: err.Error(),
			})
			continue
		}
		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT bulk_row"); err != nil {
			return stats, fmt.Errorf("failed to release savepoint: %w", err)
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit bulk upsert: %w", err)
	}
	return stats, nil
}
