package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"greep/adapters/excel"
	"greep/adapters/postgres"
	"greep/adapters/sqlite"
	"greep/app"
	"greep/internal"
	"greep/internal/config"
	"greep/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "greep-import",
		Short: "Greep Market bulk product import",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newImportCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Detect the header row and suggest column mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewImportService(excel.Source{}, nil, nil, internal.DefaultLogger)
			result, err := service.Analyze(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}

			fmt.Printf("File: %s\n", result.Filename)
			fmt.Printf("Header row: %d, data rows: %d\n",
				result.Result.HeaderRowIndex, result.Result.TotalRows)
			fmt.Printf("Columns (%d):\n", len(result.Result.Columns))
			for _, col := range result.Result.Columns {
				fmt.Printf("  [%d] %-24s %-7s samples=%v\n",
					col.Index, col.Header, col.DataType, col.SampleValues)
			}
			fmt.Printf("Suggested mappings (%d):\n", len(result.Result.SuggestedMappings))
			for _, m := range result.Result.SuggestedMappings {
				fmt.Printf("  column %d -> %-16s confidence %.2f\n",
					m.ColumnIndex, m.FieldKey, m.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full analyze result as JSON")
	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import products applying the engine's suggested mappings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := buildFullService()
			if err != nil {
				return err
			}

			result, err := service.Import(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %s: %d inserted, %d updated, %d failed, %d skipped\n",
				result.Filename, result.Inserted, result.Updated, result.Failed, result.Skipped)
			for _, re := range result.RowErrors {
				fmt.Printf("  row %d: %s\n", re.Row, re.Message)
			}
			return nil
		},
	}
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ledger, err := sqlite.OpenLedger(cfg.ImportLog.Path)
			if err != nil {
				return err
			}

			records, err := ledger.List(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Printf("%s  %-32s rows=%d inserted=%d updated=%d failed=%d\n",
					rec.CreatedAt.Format("2006-01-02 15:04"), rec.Filename,
					rec.TotalRows, rec.Inserted, rec.Updated, rec.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum records to list")
	return cmd
}

func buildFullService() (*app.ImportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var products ports.ProductRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to product database: %w", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			return nil, err
		}
		products = postgres.NewProductRepository(db)
	}

	ledger, err := sqlite.OpenLedger(cfg.ImportLog.Path)
	if err != nil {
		return nil, err
	}
	return app.NewImportService(excel.Source{}, products, ledger, internal.DefaultLogger), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
