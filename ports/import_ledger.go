package ports

import (
	"context"

	"greep/domain/importlog"
)

// ImportLedger records confirmed imports for audit and history views.
type ImportLedger interface {
	Record(ctx context.Context, rec importlog.Record) error
	List(ctx context.Context, limit int) ([]importlog.Record, error)
}
