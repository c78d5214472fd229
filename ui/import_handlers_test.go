package ui

import (
	"testing"
)

func TestParseMappingOverrides(t *testing.T) {
	payload := `{"mappings":[
		{"excel_column_index":1,"product_field":"name","confidence":0.9},
		{"excel_column_index":3,"product_field":"price"}
	]}`

	mappings, err := parseMappingOverrides(payload)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("Expected 2 mappings, got %d", len(mappings))
	}
	if mappings[0].ColumnIndex != 1 || mappings[0].FieldKey != "name" || mappings[0].Confidence != 0.9 {
		t.Errorf("Unexpected first mapping: %+v", mappings[0])
	}
	if mappings[1].ColumnIndex != 3 || mappings[1].FieldKey != "price" {
		t.Errorf("Unexpected second mapping: %+v", mappings[1])
	}
}

func TestParseMappingOverrides_BareArray(t *testing.T) {
	mappings, err := parseMappingOverrides(`[{"excel_column_index":0,"product_field":"sku"}]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mappings) != 1 || mappings[0].FieldKey != "sku" {
		t.Errorf("Unexpected mappings: %+v", mappings)
	}
}

func TestParseMappingOverrides_Empty(t *testing.T) {
	mappings, err := parseMappingOverrides("")
	if err != nil || mappings != nil {
		t.Errorf("Empty payload should yield nil, got %v, %v", mappings, err)
	}
}

func TestParseMappingOverrides_InvalidJSON(t *testing.T) {
	if _, err := parseMappingOverrides("{not json"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}
