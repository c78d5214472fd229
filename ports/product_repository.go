package ports

import (
	"context"

	"greep/domain/product"
)

// ProductRepository persists materialized product drafts.
// BulkUpsert writes all drafts in one transaction, keyed on SKU when
// present, and reports per-row failures without aborting the batch.
type ProductRepository interface {
	BulkUpsert(ctx context.Context, drafts []product.Draft) (product.UpsertStats, error)
}
