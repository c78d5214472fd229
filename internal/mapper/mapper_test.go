package mapper

import (
	"testing"

	"greep/domain/sheet"
	"greep/internal/errors"
)

func TestParse_Scenario(t *testing.T) {
	grid := sheet.Grid{
		{"Product", "Cost", "Qty"},
		{"Apple", "3.50", "10"},
		{"Banana", "1.20", "25"},
	}

	result, err := Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if result.HeaderRowIndex != 0 {
		t.Errorf("Expected header row 0, got %d", result.HeaderRowIndex)
	}
	if result.TotalRows != 2 {
		t.Errorf("Expected 2 data rows, got %d", result.TotalRows)
	}
	if len(result.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(result.Columns))
	}

	wantFields := map[int]string{
		0: "name",           // "Product" is a name synonym
		1: "cost_price",     // "Cost" via substring against "cost price"
		2: "stock_quantity", // "Qty" is a stock_quantity synonym
	}
	for idx, want := range wantFields {
		m, ok := findMapping(result.SuggestedMappings, idx)
		if !ok {
			t.Errorf("Column %d has no suggested mapping", idx)
			continue
		}
		if m.FieldKey != want {
			t.Errorf("Column %d mapped to %s, want %s", idx, m.FieldKey, want)
		}
	}
}

func TestParse_EmptyGridRejected(t *testing.T) {
	_, err := Parse(nil)
	if err == nil {
		t.Fatal("Expected error for empty grid")
	}
	if errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT, got %s", errors.GetCode(err))
	}
}

func TestParse_HeaderOnlyGrid(t *testing.T) {
	result, err := Parse(sheet.Grid{{"Name", "Price"}})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.TotalRows != 0 {
		t.Errorf("Expected 0 data rows, got %d", result.TotalRows)
	}
	if len(result.Columns) != 2 {
		t.Errorf("Expected 2 columns, got %d", len(result.Columns))
	}
}

func TestParse_Idempotent(t *testing.T) {
	grid := sheet.Grid{
		{"Name", "Price", "Stock"},
		{"Apple", "3.50", "10"},
		{"Banana", "1.20", "25"},
	}

	first, err := Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	second, err := Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if first.HeaderRowIndex != second.HeaderRowIndex || first.TotalRows != second.TotalRows {
		t.Error("Repeated parses disagree on header/row counts")
	}
	if len(first.SuggestedMappings) != len(second.SuggestedMappings) {
		t.Fatal("Repeated parses disagree on mapping count")
	}
	for i := range first.SuggestedMappings {
		a, b := first.SuggestedMappings[i], second.SuggestedMappings[i]
		if a.ColumnIndex != b.ColumnIndex || a.FieldKey != b.FieldKey || a.Confidence != b.Confidence {
			t.Errorf("Mapping %d differs between parses: %+v vs %+v", i, a, b)
		}
	}
}

func TestParse_GridNotMutated(t *testing.T) {
	grid := sheet.Grid{
		{"  Name  ", "Price"},
		{" Apple ", "3.50"},
	}

	if _, err := Parse(grid); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if grid[0][0] != "  Name  " || grid[1][0] != " Apple " {
		t.Error("Parse must not mutate the input grid")
	}
}
