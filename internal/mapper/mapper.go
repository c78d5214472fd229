package mapper

import (
	"greep/domain/sheet"
	"greep/internal/errors"
)

// Parse runs the full column-inference pipeline over a decoded grid:
// header detection, column extraction, then mapping suggestion. The grid is
// read-only throughout; calling Parse twice on the same grid yields an
// identical result.
func Parse(grid sheet.Grid) (*sheet.ParseResult, error) {
	if len(grid) == 0 {
		return nil, errors.InvalidInput("grid has no rows")
	}

	headerRowIndex := DetectHeaderRow(grid)
	columns := ExtractColumns(grid, headerRowIndex)
	mappings := ScoreMappings(columns)

	return &sheet.ParseResult{
		Columns:           columns,
		Data:              grid,
		HeaderRowIndex:    headerRowIndex,
		TotalRows:         len(grid) - headerRowIndex - 1,
		SuggestedMappings: mappings,
	}, nil
}
