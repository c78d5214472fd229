package product

import "fmt"

// Draft is a product row materialized from a spreadsheet, ready for the
// import writer. Values are already coerced to the catalog field types;
// unmapped attributes keep their zero value.
type Draft struct {
	ID            string  `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Category      string  `json:"category" db:"category"`
	SKU           string  `json:"sku" db:"sku"`
	Barcode       string  `json:"barcode" db:"barcode"`
	Price         float64 `json:"price" db:"price"`
	CostPrice     float64 `json:"cost_price" db:"cost_price"`
	StockQuantity float64 `json:"stock_quantity" db:"stock_quantity"`
	MinStockLevel float64 `json:"min_stock_level" db:"min_stock_level"`
	Unit          string  `json:"unit" db:"unit"`
	Weight        float64 `json:"weight" db:"weight"`
	Description   string  `json:"description" db:"description"`
	IsActive      bool    `json:"is_active" db:"is_active"`

	// RowIndex is the 0-based source row in the grid, for error reporting.
	RowIndex int `json:"row_index" db:"-"`
}

// SetField assigns a coerced value to the attribute named by a catalog field
// key. Text fields expect string, number fields float64, boolean fields bool.
func (d *Draft) SetField(key string, value any) error {
	switch key {
	case "name":
		d.Name, _ = value.(string)
	case "category":
		d.Category, _ = value.(string)
	case "sku":
		d.SKU, _ = value.(string)
	case "barcode":
		d.Barcode, _ = value.(string)
	case "price":
		d.Price, _ = value.(float64)
	case "cost_price":
		d.CostPrice, _ = value.(float64)
	case "stock_quantity":
		d.StockQuantity, _ = value.(float64)
	case "min_stock_level":
		d.MinStockLevel, _ = value.(float64)
	case "unit":
		d.Unit, _ = value.(string)
	case "weight":
		d.Weight, _ = value.(float64)
	case "description":
		d.Description, _ = value.(string)
	case "is_active":
		d.IsActive, _ = value.(bool)
	default:
		return fmt.Errorf("unknown product field: %s", key)
	}
	return nil
}

// RowError reports a single row that could not be written.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// UpsertStats summarizes a bulk write.
type UpsertStats struct {
	Inserted int        `json:"inserted"`
	Updated  int        `json:"updated"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors,omitempty"`
}
