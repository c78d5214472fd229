package sheet

// Grid is a row-major matrix of raw cell values as produced by a
// spreadsheet decoder. Cells arrive as strings: numeric and date cells are
// already formatted by the decoder, empty cells are empty strings. The grid
// is never mutated by the engine.
type Grid [][]string

// DataType classifies a column's sampled values or a catalog field's
// expected value shape.
type DataType string

const (
	TypeText    DataType = "text"
	TypeNumber  DataType = "number"
	TypeDate    DataType = "date"
	TypeMixed   DataType = "mixed"
	TypeBoolean DataType = "boolean"
)

// Column describes one non-empty header cell of the detected header row.
// Index is the 0-based position in the header row and is the join key back
// into the Grid; it is never re-numbered, so indices in a column list may be
// non-contiguous when empty headers were skipped.
type Column struct {
	Index        int      `json:"index"`
	Header       string   `json:"header"`
	SampleValues []string `json:"sample_values"`
	DataType     DataType `json:"data_type"`
}

// Mapping assigns one spreadsheet column to one canonical product field with
// a heuristic confidence in [0,1]. Transform coerces a raw cell value into
// the field's value shape; it is carried for the import writer and excluded
// from serialization.
type Mapping struct {
	ColumnIndex int     `json:"excel_column_index"`
	FieldKey    string  `json:"product_field"`
	Confidence  float64 `json:"confidence"`

	Transform func(raw string) any `json:"-"`
}

// ParseResult is the terminal artifact of the column-inference pipeline.
// TotalRows counts the grid rows after the header row and may be 0.
// SuggestedMappings is sorted by confidence descending and never contains an
// entry at or below the acceptance threshold.
type ParseResult struct {
	Columns           []Column  `json:"columns"`
	Data              Grid      `json:"data"`
	HeaderRowIndex    int       `json:"header_row_index"`
	TotalRows         int       `json:"total_rows"`
	SuggestedMappings []Mapping `json:"suggested_mappings"`
}
