package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/occload/internal/exitcode"
	"github.com/gyeh/occload/internal/logging"
	"github.com/gyeh/occload/internal/model"
	"github.com/gyeh/occload/internal/normalize"
	"github.com/gyeh/occload/internal/parquetread"
)

const maxReportedIssues = 10

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and date statistics (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	planCmd.Flags().Int64Var(&cfg.SampleSize, "sample", 0, "Rows to examine (0 means all)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

// dateStats counts outcomes for one configured date field.
type dateStats struct {
	fields normalize.DateFields
	counts map[string]int64
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	norm, err := normalize.NewNormalizer(cfg.Dates)
	if err != nil {
		log.Error().Err(err).Msg("date field configuration invalid")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := parquetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema(), cfg.DateFieldColumns()); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.ValidationError)
	}

	numRows := reader.NumRows()
	limit := numRows
	if cfg.SampleSize > 0 && cfg.SampleSize < numRows {
		limit = cfg.SampleSize
	}

	stats := make([]*dateStats, 0, len(cfg.Dates))
	getters := make([]func(*model.OccurrenceRow) string, 0, len(cfg.Dates))
	for _, fs := range norm.DateFields() {
		get, err := model.OccurrenceTextFields.Getter(fs.Date)
		if err != nil {
			log.Error().Err(err).Msg("date field configuration invalid")
			os.Exit(exitcode.UsageError)
		}
		stats = append(stats, &dateStats{fields: fs, counts: make(map[string]int64)})
		getters = append(getters, get)
	}

	parser := normalize.NewDateParser()
	var issues []model.RowIssue
	buf := make([]model.OccurrenceRow, 256)
	var scanned int64

	for scanned < limit {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && scanned < limit; i++ {
			scanned++
			for j, get := range getters {
				var pd normalize.PartialDate
				var res normalize.ProcessingResult
				parser.Process(get(&buf[i]), &pd, &res)
				if res.HasErrors() {
					stats[j].counts["error"]++
					for _, msg := range res.Errors() {
						issues = append(issues, model.RowIssue{SourceRowNumber: scanned, Field: stats[j].fields.Date, Message: msg})
					}
					continue
				}
				if pd.IsZero() {
					stats[j].counts["blank"]++
					continue
				}
				stats[j].counts[pd.Granularity().String()]++
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error().Err(readErr).Msg("failed to read rows")
			os.Exit(exitcode.ValidationError)
		}
	}

	fmt.Println("=== occload plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Total rows: %d\n", numRows)
	fmt.Printf("Scanned:    %d rows\n", scanned)
	for _, st := range stats {
		fmt.Printf("\n%s:\n", st.fields)
		for _, g := range []string{"full-date", "year-month", "year", "month", "blank", "error"} {
			if c := st.counts[g]; c > 0 {
				fmt.Printf("  %-12s %8d\n", g, c)
			}
		}
	}
	if len(issues) > 0 {
		fmt.Printf("\nDate issues: %d (first %d shown)\n", len(issues), min(len(issues), maxReportedIssues))
		for _, is := range issues[:min(len(issues), maxReportedIssues)] {
			fmt.Printf("  row %-8d %-16s %s\n", is.SourceRowNumber, is.Field, is.Message)
		}
	}
	fmt.Println("\nSchema validation: OK")

	return nil
}
