package profiling

import (
	"github.com/montanaflynn/stats"

	"greep/domain/sheet"
	"greep/internal/mapper"
)

// ColumnProfile summarizes the numeric samples of one extracted column, for
// the import-review UI. Only columns classified as number get a profile.
type ColumnProfile struct {
	Index  int     `json:"index"`
	Header string  `json:"header"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ProfileColumns builds numeric profiles from column sample values.
// Samples that fail numeric coercion are ignored; a column with no numeric
// samples yields no profile.
func ProfileColumns(columns []sheet.Column) []ColumnProfile {
	var profiles []ColumnProfile
	for _, col := range columns {
		if col.DataType != sheet.TypeNumber {
			continue
		}

		var values stats.Float64Data
		for _, s := range col.SampleValues {
			if v, ok := mapper.Numeric(s); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		mean, _ := stats.Mean(values)
		median, _ := stats.Median(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)

		profiles = append(profiles, ColumnProfile{
			Index:  col.Index,
			Header: col.Header,
			Count:  len(values),
			Mean:   mean,
			Median: median,
			Min:    min,
			Max:    max,
		})
	}
	return profiles
}
