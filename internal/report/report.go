package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oakline/shopdata/internal/load"
)

// Run is the whole reporter stage: query the store, write the report CSV,
// and print the preview and summary to stdout.
func Run(ctx context.Context, dbPath, reportPath string, previewRows int, logger *slog.Logger) error {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("database %s missing (run the loader first)", dbPath)
		}
		return fmt.Errorf("stat %s: %w", dbPath, err)
	}

	db, err := load.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := Fetch(ctx, db)
	if err != nil {
		return err
	}
	if err := WriteCSV(reportPath, rows); err != nil {
		return err
	}

	RenderPreview(os.Stdout, rows, previewRows)
	PrintSummary(os.Stdout, Summarize(rows))

	logger.Info("report written",
		slog.String("path", reportPath), slog.Int("rows", len(rows)))
	return nil
}
