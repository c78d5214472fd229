package mapper

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"greep/domain/sheet"
)

// Classification thresholds: a column needs more than 80% numeric (or
// date-like) samples to commit to that type.
const typeRatio = 0.8

var nonNumericChars = regexp.MustCompile(`[^0-9.\-]`)

// scientificMarkers flag values that spreadsheet tools mangled into
// exponential notation (long barcodes, IDs). Such values must stay text.
var scientificMarkers = []string{"E+", "e+", "E-", "e-"}

// dateLayouts are tried in order by isDateLike and CoerceValue.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"02-Jan-2006",
}

func isScientific(s string) bool {
	for _, m := range scientificMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// stripNumeric removes everything except digits, '.' and '-'.
func stripNumeric(s string) string {
	return nonNumericChars.ReplaceAllString(s, "")
}

// parseNumeric reports whether a value is numeric after stripping, and the
// parsed number. "$3.50" and "ABC123" both qualify; that is the intended
// lenient behavior for human-authored sheets.
func parseNumeric(s string) (float64, bool) {
	cleaned := stripNumeric(s)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Numeric is the exported form of parseNumeric, shared with the column
// profiler.
func Numeric(s string) (float64, bool) {
	return parseNumeric(s)
}

func isIntegral(s string) bool {
	v, ok := parseNumeric(s)
	return ok && v == math.Trunc(v)
}

func isDateLike(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return true
		}
	}
	return false
}

// Classify infers a column data type from its sample values.
// Scientific-notation values count as neither numeric nor date-like, so an
// all-exponent column degrades to text rather than number.
func Classify(samples []string) sheet.DataType {
	var total, numeric, date int
	for _, s := range samples {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		total++
		if isScientific(s) {
			continue
		}
		if _, ok := parseNumeric(s); ok {
			numeric++
		} else if isDateLike(s) {
			date++
		}
	}
	if total == 0 {
		return sheet.TypeText
	}

	switch {
	case float64(numeric)/float64(total) > typeRatio:
		return sheet.TypeNumber
	case float64(date)/float64(total) > typeRatio:
		return sheet.TypeDate
	case numeric > 0:
		return sheet.TypeMixed
	default:
		return sheet.TypeText
	}
}

// CoerceValue normalizes a raw cell value into the given field type.
// Malformed content never errors: numbers default to 0, dates fall back to
// the current time, everything else is a trimmed string.
func CoerceValue(dt sheet.DataType, raw string) any {
	switch dt {
	case sheet.TypeNumber:
		v, ok := parseNumeric(raw)
		if !ok {
			return 0.0
		}
		return v
	case sheet.TypeBoolean:
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "yes", "1", "active":
			return true
		}
		return false
	case sheet.TypeDate:
		s := strings.TrimSpace(raw)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return time.Now()
	default:
		return strings.TrimSpace(raw)
	}
}

// Coercer returns the coercion function for a field data type, carried on
// mappings for the import writer.
func Coercer(dt sheet.DataType) func(string) any {
	return func(raw string) any {
		return CoerceValue(dt, raw)
	}
}
