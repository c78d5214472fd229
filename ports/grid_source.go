package ports

import "greep/domain/sheet"

// GridSource decodes a spreadsheet file on disk into a raw cell grid.
// Implementations must preserve row and column order exactly as authored.
type GridSource interface {
	Read(path string) (sheet.Grid, error)
}
