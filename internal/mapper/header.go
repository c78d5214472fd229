package mapper

import (
	"strconv"
	"strings"
	"unicode"

	"greep/domain/sheet"
)

// Header detection weights. Text ratio dominates: headers are mostly
// descriptive text, not numbers.
const (
	headerScanRows  = 5
	textRatioWeight = 50.0
	keywordWeight   = 30.0
	caseBonusWeight = 20.0
)

// headerKeywords is the fixed vocabulary the detector looks for in candidate
// rows. Kept a subset of the catalog synonym vocabulary.
var headerKeywords = []string{
	"name", "price", "quantity", "category", "sku", "barcode",
	"type", "unit", "description", "cost", "stock",
}

// DetectHeaderRow scans at most the first 5 rows and returns the index of
// the best header candidate. It never fails: an all-zero field degrades to
// row 0, ties keep the earliest row. Callers must guard against an empty
// grid.
func DetectHeaderRow(grid sheet.Grid) int {
	limit := headerScanRows
	if len(grid) < limit {
		limit = len(grid)
	}

	bestRow := 0
	bestScore := -1.0
	for i := 0; i < limit; i++ {
		if score := scoreHeaderCandidate(grid[i]); score > bestScore {
			bestScore = score
			bestRow = i
		}
	}
	return bestRow
}

func scoreHeaderCandidate(row []string) float64 {
	if len(row) == 0 {
		return 0
	}

	textCells := 0
	keywordCells := 0
	styles := make(map[string]bool)
	hasText := false

	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			continue
		}
		textCells++
		hasText = true
		styles[casingStyle(cell)] = true

		lower := strings.ToLower(cell)
		for _, kw := range headerKeywords {
			if strings.Contains(lower, kw) {
				keywordCells++
				break
			}
		}
	}

	total := float64(len(row))
	score := textRatioWeight*(float64(textCells)/total) +
		keywordWeight*(float64(keywordCells)/total)

	// Flat bonus when every text cell shares one casing style; no partial
	// credit.
	if hasText && len(styles) == 1 && !styles["none"] {
		score += caseBonusWeight
	}
	return score
}

// casingStyle buckets a cell as all-upper, all-lower, title-case or none.
func casingStyle(s string) string {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return "none"
	}

	switch {
	case s == strings.ToUpper(s):
		return "upper"
	case s == strings.ToLower(s):
		return "lower"
	case isTitleCase(s):
		return "title"
	default:
		return "none"
	}
}

func isTitleCase(s string) bool {
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
			continue
		}
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
