package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/occload/internal/db"
	"github.com/gyeh/occload/internal/model"
	"github.com/gyeh/occload/internal/normalize"
	"github.com/gyeh/occload/internal/parquetread"
	embedsql "github.com/gyeh/occload/internal/sql"
)

const readBatchSize = 1024

// Source file statuses.
const (
	StatusPending = "pending"
	StatusStaging = "staging"
	StatusStaged  = "staged"
	StatusLoaded  = "loaded"
	StatusFailed  = "failed"
)

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead     int64
	RowsStaged   int64
	RowsRejected int64
	Issues       []model.RowIssue
	Duration     time.Duration
}

// Stage streams rows from the Parquet file, normalizes them, and COPY-loads
// them into the staging table via a channel-backed CopyFromSource.
// Unparseable dates do not reject a row; they are collected as issues.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, norm *normalize.Normalizer) (*StageResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ch := make(chan *model.StagingRow, readBatchSize)
	errCh := make(chan error, 1)

	var rowsRead, rowsRejected int64
	var issues []model.RowIssue

	// Producer goroutine: read Parquet → normalize → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.OccurrenceRow, readBatchSize)
		var rowNum int64

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				rowsRead++

				num := rowNum
				staging, normErr := norm.ToStagingRow(&buf[i], pf.IngestBatchID, pf.SourceFileID, rowNum,
					func(field, msg string) {
						issues = append(issues, model.RowIssue{
							IngestBatchID:   pf.IngestBatchID,
							SourceRowNumber: num,
							Field:           field,
							Message:         msg,
						})
					})
				if normErr != nil {
					rowsRejected++
					log.Warn().Err(normErr).Int64("row", rowNum).Msg("row rejected")
					continue
				}

				select {
				case ch <- staging:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: COPY from channel into staging table
	source := db.NewChannelSource(ch)
	rowsStaged, err := pool.CopyFrom(ctx,
		pgx.Identifier{"ingest", "stage_occurrences"},
		model.StagingColumns(),
		source,
	)
	if err != nil {
		// Unblock the producer if COPY gave up early.
		for range ch {
		}
	}

	// Wait for producer to finish
	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_staged", rowsStaged).
		Int64("rows_rejected", rowsRejected).
		Int("date_issues", len(issues)).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rowsStaged)/dur.Seconds()).
		Msg("staging complete")

	return &StageResult{
		RowsRead:     rowsRead,
		RowsStaged:   rowsStaged,
		RowsRejected: rowsRejected,
		Issues:       issues,
		Duration:     dur,
	}, nil
}

// RecordIssues COPY-loads the collected data-quality issues.
func RecordIssues(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, issues []model.RowIssue) (int64, error) {
	if len(issues) == 0 {
		return 0, nil
	}
	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{"ingest", "row_issues"},
		model.IssueColumns(),
		db.IssueSource(issues),
	)
	if err != nil {
		return 0, fmt.Errorf("copy row issues: %w", err)
	}
	log.Info().Int64("issues", n).Msg("row issues recorded")
	return n, nil
}

// UpdateStatus updates the source file status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, sourceFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateSourceStatus, sourceFileID, status)
	return err
}
