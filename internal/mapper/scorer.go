package mapper

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"greep/domain/catalog"
	"greep/domain/sheet"
)

// Scoring constants. Per-pair scores are additive and clamped to [0,1];
// a column whose best field scores at or below the acceptance threshold is
// omitted from suggestions rather than force-mapped.
const (
	acceptanceThreshold = 0.3
	exactHeaderScore    = 1.0
	partialHeaderScore  = 0.8
	typeBonus           = 0.2
	typePenalty         = -0.3
	sampleWeight        = 0.3
)

// unitVocabulary is the fixed unit wordlist for the unit-field sample
// heuristic; matches are exact and case-insensitive.
var unitVocabulary = map[string]bool{
	"kg": true, "g": true, "pcs": true, "pieces": true, "box": true,
	"pack": true, "liter": true, "l": true, "ml": true, "gram": true,
	"kilogram": true,
}

// ScoreMappings computes the best catalog field for every column and returns
// the accepted mappings sorted by confidence descending. A field may receive
// several columns; deduplication authority stays with the reviewing caller.
func ScoreMappings(columns []sheet.Column) []sheet.Mapping {
	mappings := make([]sheet.Mapping, 0, len(columns))

	for _, col := range columns {
		var best catalog.Field
		bestScore := 0.0
		for _, field := range catalog.Fields {
			if s := scorePair(col, field); s > bestScore {
				bestScore = s
				best = field
			}
		}
		if bestScore <= acceptanceThreshold {
			continue
		}
		mappings = append(mappings, sheet.Mapping{
			ColumnIndex: col.Index,
			FieldKey:    best.Key,
			Confidence:  bestScore,
			Transform:   Coercer(best.DataType),
		})
	}

	sort.SliceStable(mappings, func(i, j int) bool {
		return mappings[i].Confidence > mappings[j].Confidence
	})
	return mappings
}

func scorePair(col sheet.Column, field catalog.Field) float64 {
	score := headerScore(col.Header, field)
	if score == 0 {
		// Without any header evidence the type and sample signals alone
		// would pull every clean text column toward category/name; a pair
		// with no name overlap is never a candidate.
		return 0
	}
	score += typeScore(col.DataType, field.DataType)
	score += sampleWeight * sampleScore(field.Key, col.SampleValues)

	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}

// headerScore matches the column header against the field's synonyms.
// An exact case-insensitive hit wins outright; otherwise containment in
// either direction earns the partial score.
func headerScore(header string, field catalog.Field) float64 {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return 0
	}
	for _, syn := range field.PossibleHeaders {
		if h == syn {
			return exactHeaderScore
		}
	}
	for _, syn := range field.PossibleHeaders {
		if strings.Contains(h, syn) || strings.Contains(syn, h) {
			return partialHeaderScore
		}
	}
	return 0
}

// typeScore rewards compatible column/field types and penalizes the rest.
// Numbers can always serve as text (barcodes), and mixed columns fit text
// fields.
func typeScore(colType, fieldType sheet.DataType) float64 {
	compatible := colType == fieldType ||
		(colType == sheet.TypeMixed && fieldType == sheet.TypeText) ||
		(colType == sheet.TypeNumber && fieldType == sheet.TypeText)
	if compatible {
		return typeBonus
	}
	return typePenalty
}

// sampleScore runs the field-specific heuristics over the sample values and
// returns a value in [0,1], later scaled by sampleWeight. Fields without a
// heuristic contribute nothing.
func sampleScore(fieldKey string, samples []string) float64 {
	if len(samples) == 0 {
		return 0
	}

	switch fieldKey {
	case "name":
		lengths := make([]float64, len(samples))
		for i, s := range samples {
			lengths[i] = float64(len(s))
		}
		avg, err := stats.Mean(lengths)
		if err == nil && avg > 3 && avg < 100 {
			return 0.5
		}
		return 0

	case "price", "cost_price":
		return fraction(samples, func(s string) bool {
			_, ok := parseNumeric(s)
			return ok
		}) * 0.8

	case "stock_quantity":
		return fraction(samples, isIntegral) * 0.7

	case "category":
		return fraction(samples, func(s string) bool {
			_, numeric := parseNumeric(s)
			return !numeric && len(s) < 50
		}) * 0.6

	case "unit":
		return fraction(samples, func(s string) bool {
			return unitVocabulary[strings.ToLower(s)]
		}) * 0.9
	}
	return 0
}

func fraction(samples []string, pred func(string) bool) float64 {
	hits := 0
	for _, s := range samples {
		if pred(s) {
			hits++
		}
	}
	return float64(hits) / float64(len(samples))
}
