package app

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"greep/domain/catalog"
	"greep/domain/importlog"
	"greep/domain/product"
	"greep/domain/sheet"
	"greep/internal"
	"greep/internal/errors"
	"greep/internal/mapper"
	"greep/internal/profiling"
	"greep/ports"
)

// ImportService orchestrates the bulk product import: decode the file, run
// the column-inference engine, and on confirmation materialize rows and
// write them. The engine only suggests; the reviewer's mappings are
// authoritative.
type ImportService struct {
	source   ports.GridSource
	products ports.ProductRepository
	ledger   ports.ImportLedger
	log      *internal.Logger
}

// NewImportService wires the service. products and ledger may be nil for
// analyze-only use (e.g. the CLI without a database).
func NewImportService(source ports.GridSource, products ports.ProductRepository, ledger ports.ImportLedger, log *internal.Logger) *ImportService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &ImportService{
		source:   source,
		products: products,
		ledger:   ledger,
		log:      log.WithComponent("importer"),
	}
}

// AnalyzeResult is the review payload: the engine's parse result plus
// numeric column profiles for the UI.
type AnalyzeResult struct {
	Filename string                    `json:"filename"`
	Result   *sheet.ParseResult        `json:"result"`
	Profiles []profiling.ColumnProfile `json:"column_profiles,omitempty"`
}

// ImportResult summarizes one confirmed import.
type ImportResult struct {
	Filename        string             `json:"filename"`
	TotalRows       int                `json:"total_rows"`
	Inserted        int                `json:"inserted"`
	Updated         int                `json:"updated"`
	Failed          int                `json:"failed"`
	Skipped         int                `json:"skipped"`
	RowErrors       []product.RowError `json:"row_errors,omitempty"`
	AppliedMappings []sheet.Mapping    `json:"applied_mappings"`
}

// Analyze decodes the file and runs the inference pipeline.
func (s *ImportService) Analyze(path string) (*AnalyzeResult, error) {
	grid, err := s.source.Read(path)
	if err != nil {
		return nil, err
	}

	result, err := mapper.Parse(grid)
	if err != nil {
		return nil, err
	}

	s.log.Info("analyzed %s: header row %d, %d columns, %d suggestions",
		filepath.Base(path), result.HeaderRowIndex, len(result.Columns), len(result.SuggestedMappings))

	return &AnalyzeResult{
		Filename: filepath.Base(path),
		Result:   result,
		Profiles: profiling.ProfileColumns(result.Columns),
	}, nil
}

// Import materializes product drafts from the grid using the given mappings
// and writes them. An empty mapping list falls back to the engine's own
// suggestions.
func (s *ImportService) Import(ctx context.Context, path string, mappings []sheet.Mapping) (*ImportResult, error) {
	if s.products == nil {
		return nil, errors.DatabaseError("product database is not configured")
	}

	grid, err := s.source.Read(path)
	if err != nil {
		return nil, err
	}

	parsed, err := mapper.Parse(grid)
	if err != nil {
		return nil, err
	}

	if len(mappings) == 0 {
		mappings = parsed.SuggestedMappings
	}
	if err := validateMappings(mappings); err != nil {
		return nil, err
	}

	drafts, skipped := materializeRows(grid, parsed.HeaderRowIndex, mappings)
	stats, err := s.products.BulkUpsert(ctx, drafts)
	if err != nil {
		return nil, errors.Wrap(err, "bulk upsert failed")
	}

	result := &ImportResult{
		Filename:        filepath.Base(path),
		TotalRows:       parsed.TotalRows,
		Inserted:        stats.Inserted,
		Updated:         stats.Updated,
		Failed:          stats.Failed,
		Skipped:         skipped,
		RowErrors:       stats.Errors,
		AppliedMappings: mappings,
	}
	s.recordImport(ctx, result)

	s.log.Info("imported %s: %d inserted, %d updated, %d failed, %d skipped",
		result.Filename, result.Inserted, result.Updated, result.Failed, result.Skipped)
	return result, nil
}

// History lists the most recent confirmed imports.
func (s *ImportService) History(ctx context.Context, limit int) ([]importlog.Record, error) {
	if s.ledger == nil {
		return nil, nil
	}
	return s.ledger.List(ctx, limit)
}

// recordImport is best-effort: a ledger failure never fails the import.
func (s *ImportService) recordImport(ctx context.Context, result *ImportResult) {
	if s.ledger == nil {
		return
	}

	mappingsJSON, err := json.Marshal(result.AppliedMappings)
	if err != nil {
		mappingsJSON = []byte("[]")
	}
	rec := importlog.Record{
		Filename:     result.Filename,
		TotalRows:    result.TotalRows,
		Inserted:     result.Inserted,
		Updated:      result.Updated,
		Failed:       result.Failed,
		MappingsJSON: string(mappingsJSON),
	}
	if err := s.ledger.Record(ctx, rec); err != nil {
		s.log.Warn("failed to record import of %s: %v", result.Filename, err)
	}
}

func validateMappings(mappings []sheet.Mapping) error {
	for _, m := range mappings {
		if _, ok := catalog.ByKey(m.FieldKey); !ok {
			return errors.InvalidInput("unknown product field: " + m.FieldKey)
		}
		if m.ColumnIndex < 0 {
			return errors.InvalidInput("negative column index in mapping")
		}
	}
	return nil
}

// materializeRows applies the confirmed mappings to every data row after the
// header, coercing cells to the target field types. Rows whose mapped cells
// are all empty are skipped.
func materializeRows(grid sheet.Grid, headerRowIndex int, mappings []sheet.Mapping) ([]product.Draft, int) {
	var drafts []product.Draft
	skipped := 0

	for r := headerRowIndex + 1; r < len(grid); r++ {
		row := grid[r]

		empty := true
		for _, m := range mappings {
			if m.ColumnIndex < len(row) && strings.TrimSpace(row[m.ColumnIndex]) != "" {
				empty = false
				break
			}
		}
		if empty {
			skipped++
			continue
		}

		draft := product.Draft{RowIndex: r}
		for _, m := range mappings {
			if m.ColumnIndex >= len(row) {
				continue
			}
			raw := row[m.ColumnIndex]

			transform := m.Transform
			if transform == nil {
				// Mappings arriving from a JSON payload carry no closure;
				// derive the coercion from the catalog.
				field, ok := catalog.ByKey(m.FieldKey)
				if !ok {
					continue
				}
				transform = mapper.Coercer(field.DataType)
			}
			draft.SetField(m.FieldKey, transform(raw))
		}
		drafts = append(drafts, draft)
	}
	return drafts, skipped
}
