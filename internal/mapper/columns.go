package mapper

import (
	"strings"

	"greep/domain/sheet"
)

// maxSampleRows bounds how many rows after the header contribute samples.
const maxSampleRows = 3

// ExtractColumns builds one column descriptor per non-empty header cell.
// Empty headers are skipped entirely; retained columns keep their original
// grid index. Samples come from the rows immediately after the header row,
// read positionally: a row shorter than the column index simply contributes
// nothing.
func ExtractColumns(grid sheet.Grid, headerRowIndex int) []sheet.Column {
	if headerRowIndex < 0 || headerRowIndex >= len(grid) {
		return nil
	}

	headerRow := grid[headerRowIndex]
	columns := make([]sheet.Column, 0, len(headerRow))

	for idx, header := range headerRow {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}

		samples := collectSamples(grid, headerRowIndex, idx)
		columns = append(columns, sheet.Column{
			Index:        idx,
			Header:       header,
			SampleValues: samples,
			DataType:     Classify(samples),
		})
	}
	return columns
}

func collectSamples(grid sheet.Grid, headerRowIndex, colIndex int) []string {
	var samples []string
	for r := headerRowIndex + 1; r < len(grid) && r <= headerRowIndex+maxSampleRows; r++ {
		row := grid[r]
		if colIndex >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[colIndex]); v != "" {
			samples = append(samples, v)
		}
	}
	return samples
}
