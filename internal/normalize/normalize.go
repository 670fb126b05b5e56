package normalize

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gyeh/occload/internal/model"
)

type occurrenceDates = DateProcessor[model.OccurrenceRow, model.StagingRow]

// Normalizer converts raw occurrence rows into staging rows. It is safe for
// concurrent use once built.
type Normalizer struct {
	dates []*occurrenceDates
}

// NewNormalizer builds one date processor per field set. An empty list
// falls back to DefaultDateFields.
func NewNormalizer(sets []DateFields) (*Normalizer, error) {
	if len(sets) == 0 {
		sets = []DateFields{DefaultDateFields()}
	}
	n := &Normalizer{}
	for _, fs := range sets {
		dp, err := NewDateProcessor(fs, model.OccurrenceTextFields, model.StagingIntFields)
		if err != nil {
			return nil, err
		}
		n.dates = append(n.dates, dp)
	}
	return n, nil
}

// DateFields returns the field sets in processing order.
func (n *Normalizer) DateFields() []DateFields {
	out := make([]DateFields, len(n.dates))
	for i, dp := range n.dates {
		out[i] = dp.Fields()
	}
	return out
}

// IssueFunc receives a data-quality message for the named input field.
type IssueFunc func(field, msg string)

// fieldSink tags messages with the input field they came from.
type fieldSink struct {
	field string
	fn    IssueFunc
}

func (s fieldSink) AddError(msg string) { s.fn(s.field, msg) }

// ToStagingRow converts a Parquet-read OccurrenceRow into a normalized
// StagingRow. Unparseable dates leave their columns nil and are reported to
// issues, which may be nil.
func (n *Normalizer) ToStagingRow(row *model.OccurrenceRow, batchID uuid.UUID, sourceFileID int64, rowNum int64, issues IssueFunc) (*model.StagingRow, error) {
	if row.OccurrenceID == "" {
		return nil, fmt.Errorf("row %d: missing occurrence id", rowNum)
	}
	s := &model.StagingRow{
		IngestBatchID:   batchID,
		SourceFileID:    sourceFileID,
		SourceRowNumber: rowNum,

		OccurrenceID:    row.OccurrenceID,
		CatalogNumber:   row.CatalogNumber,
		InstitutionCode: NormalizeCode(row.InstitutionCode),

		ScientificName:     row.ScientificName,
		ScientificNameNorm: NormalizeScientificName(row.ScientificName),

		CountryCode:      NormalizeCountryCode(row.CountryCode),
		Locality:         row.Locality,
		DecimalLatitude:  NormalizeLatitude(row.DecimalLatitude),
		DecimalLongitude: NormalizeLongitude(row.DecimalLongitude),

		VerbatimEventDate: optStr(row.VerbatimEventDate),
	}

	for _, dp := range n.dates {
		var sink ErrorSink
		if issues != nil {
			sink = fieldSink{field: dp.Fields().Date, fn: issues}
		}
		if err := dp.ProcessRecord(row, s, sink); err != nil {
			return nil, err
		}
	}

	s.SourceRowHash = RowHash(rowNum,
		row.OccurrenceID,
		derefStr(row.CatalogNumber),
		derefStr(row.InstitutionCode),
		row.ScientificName,
		row.EventDate,
	)

	return s, nil
}
