package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"greep/domain/importlog"
	"greep/domain/product"
	"greep/domain/sheet"
	"greep/internal/errors"
)

type fakeSource struct {
	grid sheet.Grid
	err  error
}

func (f fakeSource) Read(path string) (sheet.Grid, error) {
	return f.grid, f.err
}

type fakeRepository struct {
	drafts []product.Draft
	stats  *product.UpsertStats
}

func (f *fakeRepository) BulkUpsert(ctx context.Context, drafts []product.Draft) (product.UpsertStats, error) {
	f.drafts = drafts
	if f.stats == nil {
		return product.UpsertStats{Inserted: len(drafts)}, nil
	}
	return *f.stats, nil
}

type fakeLedger struct {
	records []importlog.Record
}

func (f *fakeLedger) Record(ctx context.Context, rec importlog.Record) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeLedger) List(ctx context.Context, limit int) ([]importlog.Record, error) {
	return f.records, nil
}

var importGrid = sheet.Grid{
	{"Product", "Price", "Stock", "Active"},
	{"Apple", "3.50", "10", "yes"},
	{"Banana", "1.20", "25", "no"},
	{"", "", "", ""},
}

func TestImportService_Analyze(t *testing.T) {
	svc := NewImportService(fakeSource{grid: importGrid}, nil, nil, nil)

	result, err := svc.Analyze("products.xlsx")
	assert.NoError(t, err)
	assert.Equal(t, "products.xlsx", result.Filename)
	assert.Equal(t, 0, result.Result.HeaderRowIndex)
	assert.Len(t, result.Result.Columns, 4)
	assert.NotEmpty(t, result.Result.SuggestedMappings)
	assert.NotEmpty(t, result.Profiles, "numeric columns should be profiled")
}

func TestImportService_ImportWithSuggestedMappings(t *testing.T) {
	repo := &fakeRepository{}
	ledger := &fakeLedger{}
	svc := NewImportService(fakeSource{grid: importGrid}, repo, ledger, nil)

	result, err := svc.Import(context.Background(), "products.xlsx", nil)
	assert.NoError(t, err)

	// The trailing all-empty row is skipped, not written.
	assert.Len(t, repo.drafts, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 3, result.TotalRows)

	first := repo.drafts[0]
	assert.Equal(t, "Apple", first.Name)
	assert.Equal(t, 3.5, first.Price)
	assert.Equal(t, 10.0, first.StockQuantity)
	assert.True(t, first.IsActive)

	second := repo.drafts[1]
	assert.Equal(t, "Banana", second.Name)
	assert.False(t, second.IsActive)

	assert.Len(t, ledger.records, 1)
	assert.Equal(t, "products.xlsx", ledger.records[0].Filename)
}

func TestImportService_ImportWithReviewerOverrides(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewImportService(fakeSource{grid: importGrid}, repo, nil, nil)

	// Reviewer remaps the Price column onto cost_price and drops the rest.
	overrides := []sheet.Mapping{
		{ColumnIndex: 0, FieldKey: "name"},
		{ColumnIndex: 1, FieldKey: "cost_price"},
	}

	_, err := svc.Import(context.Background(), "products.xlsx", overrides)
	assert.NoError(t, err)
	assert.Len(t, repo.drafts, 2)
	assert.Equal(t, 3.5, repo.drafts[0].CostPrice)
	assert.Zero(t, repo.drafts[0].Price)
}

func TestImportService_ImportRejectsUnknownField(t *testing.T) {
	svc := NewImportService(fakeSource{grid: importGrid}, &fakeRepository{}, nil, nil)

	_, err := svc.Import(context.Background(), "products.xlsx", []sheet.Mapping{
		{ColumnIndex: 0, FieldKey: "not_a_field"},
	})
	assert.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestImportService_ImportWithoutDatabase(t *testing.T) {
	svc := NewImportService(fakeSource{grid: importGrid}, nil, nil, nil)

	_, err := svc.Import(context.Background(), "products.xlsx", nil)
	assert.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
}

func TestImportService_HistoryWithoutLedger(t *testing.T) {
	svc := NewImportService(fakeSource{grid: importGrid}, nil, nil, nil)

	records, err := svc.History(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, records)
}
