package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/occload/internal/config"
	"github.com/gyeh/occload/internal/model"
	"github.com/gyeh/occload/internal/normalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → issues →
// transform → finalize → cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.IngestSummary, error) {
	totalStart := time.Now()

	// Field names are resolved before touching the file or the database.
	norm, err := normalize.NewNormalizer(cfg.Dates)
	if err != nil {
		return nil, &PipelineError{Phase: "config", Err: err}
	}

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.DateFieldColumns(), cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already imported, skipping (use --force to re-import)")
		return &model.IngestSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			IngestBatchID: pf.IngestBatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaging); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, norm)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, StatusStaged); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Row issues (unparseable dates)
	issueCount, err := RecordIssues(ctx, pool, log, stageResult.Issues)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: "issues", Err: err}
	}

	// Phase 4: Transform
	log.Info().Msg("starting transform")
	transformResult, err := Transform(ctx, pool, log, pf.IngestBatchID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: "transform", Err: err}
	}

	// Phase 5: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.SourceFileID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, StatusFailed)
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	// Phase 6: Cleanup staging
	if !cfg.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.IngestBatchID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.IngestSummary{
		FilePath:            pf.FilePath,
		FileSHA256:          pf.FileSHA256,
		SourceFileID:        pf.SourceFileID,
		IngestBatchID:       pf.IngestBatchID.String(),
		RowsRead:            stageResult.RowsRead,
		RowsStaged:          stageResult.RowsStaged,
		RowsRejected:        stageResult.RowsRejected,
		RowIssues:           issueCount,
		RowsInsertedServing: transformResult.RowsUpserted,
		DurationRead:        stageResult.Duration,
		DurationCopy:        stageResult.Duration,
		DurationTransform:   transformResult.Duration,
		DurationFinalize:    finalizeDur,
		DurationTotal:       time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_serving", summary.RowsInsertedServing).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("row_issues", summary.RowIssues).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}
