package mapper

import (
	"reflect"
	"testing"

	"greep/domain/sheet"
)

func TestExtractColumns_SkipsEmptyHeadersKeepsGridIndex(t *testing.T) {
	grid := sheet.Grid{
		{"", "Name", "  ", "Price"},
		{"x", "Apple", "y", "3.50"},
	}

	columns := ExtractColumns(grid, 0)
	if len(columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(columns))
	}
	if columns[0].Index != 1 || columns[1].Index != 3 {
		t.Errorf("Expected original grid indices 1 and 3, got %d and %d",
			columns[0].Index, columns[1].Index)
	}
	if columns[0].Header != "Name" || columns[1].Header != "Price" {
		t.Errorf("Unexpected headers: %q, %q", columns[0].Header, columns[1].Header)
	}
}

func TestExtractColumns_CollectsAtMostThreeSamples(t *testing.T) {
	grid := sheet.Grid{
		{"Name"},
		{"a"},
		{"b"},
		{"c"},
		{"d"}, // beyond the sample window
	}

	columns := ExtractColumns(grid, 0)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(columns[0].SampleValues, want) {
		t.Errorf("Expected samples %v, got %v", want, columns[0].SampleValues)
	}
}

func TestExtractColumns_ShortRowsContributeNothing(t *testing.T) {
	grid := sheet.Grid{
		{"Name", "Price"},
		{"Apple"}, // no price cell
		{"Banana", "1.20"},
	}

	columns := ExtractColumns(grid, 0)
	price := columns[1]
	if !reflect.DeepEqual(price.SampleValues, []string{"1.20"}) {
		t.Errorf("Expected single sample from the full row, got %v", price.SampleValues)
	}
}

func TestExtractColumns_HeaderBeyondGridYieldsNoColumns(t *testing.T) {
	grid := sheet.Grid{{"Name"}}
	if columns := ExtractColumns(grid, 3); columns != nil {
		t.Errorf("Expected nil for out-of-range header row, got %v", columns)
	}
}

func TestExtractColumns_ClassifiesFromSamples(t *testing.T) {
	grid := sheet.Grid{
		{"Name", "Price", "Barcode"},
		{"Apple", "3.50", "1.23E+12"},
		{"Banana", "1.20", "4.56E+11"},
	}

	columns := ExtractColumns(grid, 0)
	if columns[0].DataType != sheet.TypeText {
		t.Errorf("Name column should be text, got %s", columns[0].DataType)
	}
	if columns[1].DataType != sheet.TypeNumber {
		t.Errorf("Price column should be number, got %s", columns[1].DataType)
	}
	if columns[2].DataType != sheet.TypeText {
		t.Errorf("Scientific-notation column should stay text, got %s", columns[2].DataType)
	}
}
