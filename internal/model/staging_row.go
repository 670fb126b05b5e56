package model

import (
	"github.com/google/uuid"

	"github.com/gyeh/occload/internal/record"
)

// StagingRow is the normalized, DB-ready representation of one occurrence.
// Partial dates are split into nullable year/month/day columns.
type StagingRow struct {
	IngestBatchID uuid.UUID
	SourceFileID  int64

	SourceRowNumber int64
	SourceRowHash   []byte

	// Identity
	OccurrenceID    string
	CatalogNumber   *string
	InstitutionCode *string

	// Taxon
	ScientificName     string
	ScientificNameNorm *string

	// Location
	CountryCode      *string
	Locality         *string
	DecimalLatitude  *float64
	DecimalLongitude *float64

	// Event date
	VerbatimEventDate *string
	Year              *int
	Month             *int
	Day               *int

	// Identification date
	IdentifiedYear  *int
	IdentifiedMonth *int
	IdentifiedDay   *int
}

// StagingIntFields exposes the partial-date columns by name.
var StagingIntFields = record.IntFields[StagingRow]{
	"year":            func(r *StagingRow, v *int) { r.Year = v },
	"month":           func(r *StagingRow, v *int) { r.Month = v },
	"day":             func(r *StagingRow, v *int) { r.Day = v },
	"identifiedYear":  func(r *StagingRow, v *int) { r.IdentifiedYear = v },
	"identifiedMonth": func(r *StagingRow, v *int) { r.IdentifiedMonth = v },
	"identifiedDay":   func(r *StagingRow, v *int) { r.IdentifiedDay = v },
}

// StagingColumns returns the ordered column names for COPY into ingest.stage_occurrences.
func StagingColumns() []string {
	return []string{
		"ingest_batch_id",
		"source_file_id",
		"source_row_number",
		"source_row_hash",
		"occurrence_id",
		"catalog_number",
		"institution_code",
		"scientific_name",
		"scientific_name_norm",
		"country_code",
		"locality",
		"decimal_latitude",
		"decimal_longitude",
		"verbatim_event_date",
		"year",
		"month",
		"day",
		"identified_year",
		"identified_month",
		"identified_day",
	}
}

// CopyValues returns the row values in the same order as StagingColumns(),
// suitable for pgx CopyFromSource.
func (r *StagingRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.SourceFileID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.OccurrenceID,
		r.CatalogNumber,
		r.InstitutionCode,
		r.ScientificName,
		r.ScientificNameNorm,
		r.CountryCode,
		r.Locality,
		r.DecimalLatitude,
		r.DecimalLongitude,
		r.VerbatimEventDate,
		r.Year,
		r.Month,
		r.Day,
		r.IdentifiedYear,
		r.IdentifiedMonth,
		r.IdentifiedDay,
	}
}
