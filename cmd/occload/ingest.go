package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/occload/internal/db"
	"github.com/gyeh/occload/internal/exitcode"
	"github.com/gyeh/occload/internal/ingest"
	"github.com/gyeh/occload/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Normalize a Parquet occurrence file and load it into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if file SHA already exists")
	f.BoolVar(&cfg.KeepStaging, "keep-staging", false, "Keep staging rows after transform")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("ingest failed")
			switch pe.Phase {
			case "config":
				os.Exit(exitcode.UsageError)
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "stage", "issues":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.TransformError)
			}
		}
		log.Error().Err(err).Msg("ingest failed")
		os.Exit(exitcode.TransformError)
	}

	fmt.Printf("Ingest complete: %d rows staged, %d date issues, %d occurrences upserted (%.1fs)\n",
		summary.RowsStaged, summary.RowIssues, summary.RowsInsertedServing, summary.DurationTotal.Seconds())
	if summary.RowIssues > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
