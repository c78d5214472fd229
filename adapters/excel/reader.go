package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"greep/domain/sheet"
	"greep/internal/errors"
)

// GridReader decodes Excel and CSV files into a raw cell grid, preserving
// row and column order exactly as authored. It performs no trimming and no
// header handling; that belongs to the inference engine.
type GridReader struct {
	filePath string
}

// NewGridReader creates a reader for the given file path. The extension
// selects the decoder.
func NewGridReader(filePath string) *GridReader {
	return &GridReader{filePath: filePath}
}

// Read decodes the file into a grid. An empty file is rejected here, before
// the engine runs.
func (r *GridReader) Read() (sheet.Grid, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(r.filePath)
	}

	ext := strings.ToLower(filepath.Ext(r.filePath))
	switch ext {
	case ".xlsx", ".xlsm", ".xls":
		return r.readExcel()
	case ".csv":
		return r.readCSV()
	default:
		return nil, errors.UnsupportedFile(ext)
	}
}

func (r *GridReader) readExcel() (sheet.Grid, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.EmptySheet(filepath.Base(r.filePath))
	}

	// Always read the first sheet; multi-sheet workbooks import one sheet
	// at a time.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	log.Printf("[GridReader] %s read in %.2fms (%d rows)",
		filepath.Base(r.filePath), float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, errors.EmptySheet(filepath.Base(r.filePath))
	}
	return sheet.Grid(rows), nil
}

func (r *GridReader) readCSV() (sheet.Grid, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // human-authored sheets are ragged

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[GridReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, errors.EmptySheet(filepath.Base(r.filePath))
	}
	return sheet.Grid(rows), nil
}

// Source adapts GridReader to the ports.GridSource interface.
type Source struct{}

func (Source) Read(path string) (sheet.Grid, error) {
	return NewGridReader(path).Read()
}
