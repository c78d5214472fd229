package catalog

import "greep/domain/sheet"

// Field is one canonical product attribute a spreadsheet column can map to.
// PossibleHeaders holds lower-cased synonyms; exact duplicates across fields
// are not allowed (partial overlap is resolved at scoring time via substring
// matching, not here).
type Field struct {
	Key             string         `json:"key"`
	Label           string         `json:"label"`
	Required        bool           `json:"required"`
	DataType        sheet.DataType `json:"data_type"`
	PossibleHeaders []string       `json:"possible_headers"`
}

// Fields is the static, ordered product-field catalog. It is defined once at
// process start and never mutated; callers must treat it as read-only.
var Fields = []Field{
	{
		Key:      "name",
		Label:    "Product Name",
		Required: true,
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"name", "product name", "product", "item name", "item", "title",
		},
	},
	{
		Key:      "category",
		Label:    "Category",
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"category", "cat", "type", "group", "department",
		},
	},
	{
		Key:      "sku",
		Label:    "SKU",
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"sku", "sku code", "product code", "item code", "code",
		},
	},
	{
		Key:      "barcode",
		Label:    "Barcode",
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"barcode", "bar code", "ean", "upc", "gtin",
		},
	},
	{
		Key:      "price",
		Label:    "Selling Price",
		Required: true,
		DataType: sheet.TypeNumber,
		PossibleHeaders: []string{
			"price", "selling price", "sale price", "retail price", "unit price",
		},
	},
	{
		Key:      "cost_price",
		Label:    "Cost Price",
		DataType: sheet.TypeNumber,
		PossibleHeaders: []string{
			"cost price", "cost_price", "purchase price", "buying price",
			"wholesale price",
		},
	},
	{
		Key:      "stock_quantity",
		Label:    "Stock Quantity",
		DataType: sheet.TypeNumber,
		PossibleHeaders: []string{
			"stock", "stock quantity", "quantity", "qty", "in stock",
			"stock level", "inventory",
		},
	},
	{
		Key:      "min_stock_level",
		Label:    "Minimum Stock Level",
		DataType: sheet.TypeNumber,
		PossibleHeaders: []string{
			"min stock", "minimum stock", "min stock level", "reorder level",
			"min quantity",
		},
	},
	{
		Key:      "unit",
		Label:    "Unit",
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"unit", "units", "uom", "unit of measure", "measure",
		},
	},
	{
		Key:      "weight",
		Label:    "Weight",
		DataType: sheet.TypeNumber,
		PossibleHeaders: []string{
			"weight", "wt", "net weight", "gross weight",
		},
	},
	{
		Key:      "description",
		Label:    "Description",
		DataType: sheet.TypeText,
		PossibleHeaders: []string{
			"description", "desc", "details", "notes", "remarks",
		},
	},
	{
		Key:      "is_active",
		Label:    "Active",
		DataType: sheet.TypeBoolean,
		PossibleHeaders: []string{
			"active", "is active", "status", "enabled", "available",
		},
	},
}

// ByKey looks up a catalog field by its canonical key.
func ByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
