package importlog

import "time"

// Record is one confirmed import, as kept in the local import ledger.
// MappingsJSON stores the column mappings the reviewer actually applied.
type Record struct {
	ID           string    `json:"id" db:"id"`
	Filename     string    `json:"filename" db:"filename"`
	TotalRows    int       `json:"total_rows" db:"total_rows"`
	Inserted     int       `json:"inserted" db:"inserted"`
	Updated      int       `json:"updated" db:"updated"`
	Failed       int       `json:"failed" db:"failed"`
	MappingsJSON string    `json:"mappings_json" db:"mappings_json"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
