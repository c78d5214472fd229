package mapper

import (
	"testing"

	"greep/domain/sheet"
)

func TestDetectHeaderRow_FirstRow(t *testing.T) {
	grid := sheet.Grid{
		{"Name", "Price", "Category"},
		{"Apple", "3.50", "Fruit"},
		{"Banana", "1.20", "Fruit"},
	}

	if got := DetectHeaderRow(grid); got != 0 {
		t.Errorf("Expected header row 0, got %d", got)
	}
}

func TestDetectHeaderRow_OffsetHeader(t *testing.T) {
	// Title rows above the real header are a common pattern in
	// hand-authored sheets.
	grid := sheet.Grid{
		{"Greep Market Export", "", ""},
		{"", "", ""},
		{"Name", "Price", "Stock"},
		{"Apple", "3.50", "10"},
		{"Banana", "1.20", "25"},
	}

	if got := DetectHeaderRow(grid); got != 2 {
		t.Errorf("Expected header row 2, got %d", got)
	}
}

func TestDetectHeaderRow_ScansAtMostFiveRows(t *testing.T) {
	grid := sheet.Grid{
		{"1", "2"},
		{"3", "4"},
		{"5", "6"},
		{"7", "8"},
		{"9", "10"},
		{"Name", "Price"}, // row 5, beyond the scan window
		{"Apple", "3.50"},
	}

	if got := DetectHeaderRow(grid); got >= 5 {
		t.Errorf("Detector must not look past the first 5 rows, got %d", got)
	}
}

func TestDetectHeaderRow_AllZeroScoresDegradeToRowZero(t *testing.T) {
	grid := sheet.Grid{
		{"123", "456"},
		{"789", "12"},
	}

	if got := DetectHeaderRow(grid); got != 0 {
		t.Errorf("Expected degraded fallback to row 0, got %d", got)
	}
}

func TestDetectHeaderRow_TieKeepsEarliestRow(t *testing.T) {
	grid := sheet.Grid{
		{"Name", "Price"},
		{"Name", "Price"},
	}

	if got := DetectHeaderRow(grid); got != 0 {
		t.Errorf("Expected earliest row to win a tie, got %d", got)
	}
}

func TestDetectHeaderRow_CaseConsistencyBreaksTies(t *testing.T) {
	// Same text/keyword profile, but only the second row has uniform
	// casing.
	grid := sheet.Grid{
		{"nAme", "PRice"},
		{"NAME", "PRICE"},
		{"x", "y"},
	}

	if got := DetectHeaderRow(grid); got != 1 {
		t.Errorf("Expected uniformly cased row 1, got %d", got)
	}
}
