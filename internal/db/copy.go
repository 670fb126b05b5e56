package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/occload/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading StagingRows from a channel.
// This provides natural backpressure between the Parquet reader and COPY writer.
type ChannelSource struct {
	ch      <-chan *model.StagingRow
	current *model.StagingRow
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.StagingRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

func (s *ChannelSource) Err() error {
	return nil
}

// IssueSource returns a CopyFromSource over collected row issues.
func IssueSource(issues []model.RowIssue) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(issues), func(i int) ([]any, error) {
		return issues[i].CopyValues(), nil
	})
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
