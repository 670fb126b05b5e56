package model

import "github.com/google/uuid"

// RowIssue is a data-quality message recorded against one source row.
type RowIssue struct {
	IngestBatchID   uuid.UUID
	SourceRowNumber int64
	Field           string
	Message         string
}

// IssueColumns returns the ordered column names for COPY into ingest.row_issues.
func IssueColumns() []string {
	return []string{"ingest_batch_id", "source_row_number", "field", "message"}
}

// CopyValues returns the issue values in IssueColumns() order.
func (i *RowIssue) CopyValues() []any {
	return []any{i.IngestBatchID, i.SourceRowNumber, i.Field, i.Message}
}
