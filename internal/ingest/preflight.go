package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/occload/internal/normalize"
	"github.com/gyeh/occload/internal/parquetread"
	embedsql "github.com/gyeh/occload/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	FileSize   int64
	// SourceFileID is the ingest.source_files key for this file, inserted or
	// looked up by sha256.
	SourceFileID int64
	// IngestBatchID tags every staged row and issue of this run.
	IngestBatchID uuid.UUID
	NumRows       int64
	// AlreadyLoaded is true when the file was loaded before and force mode
	// is off.
	AlreadyLoaded bool
}

// Preflight hashes the file, validates the Parquet schema against the
// configured date columns, and registers the source file.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, dateColumns []string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema(), dateColumns); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}
	numRows := reader.NumRows()

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	sourceFileID, alreadyLoaded, err := registerSourceFile(ctx, pool, filePath, sha, stat.Size(), numRows, force)
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		SourceFileID:  sourceFileID,
		IngestBatchID: uuid.New(),
		NumRows:       numRows,
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, filePath, sha string, fileSize, numRows int64, force bool) (int64, bool, error) {
	var id int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile,
		filepath.Base(filePath), sha, fileSize, numRows,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("register source file: %w", err)
	}

	// Already exists (ON CONFLICT DO NOTHING returned no rows)
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupSourceFile, sha).Scan(&id, &status); err != nil {
		return 0, false, fmt.Errorf("lookup existing source file: %w", err)
	}
	if !force && status == StatusLoaded {
		return id, true, nil
	}
	if err := UpdateStatus(ctx, pool, id, StatusPending); err != nil {
		return 0, false, fmt.Errorf("reset source file status: %w", err)
	}
	return id, false, nil
}
