package model

import "github.com/gyeh/occload/internal/record"

// OccurrenceRow mirrors the Parquet schema for a single occurrence record.
// Dates arrive as free text and are parsed during normalization.
type OccurrenceRow struct {
	OccurrenceID    string  `parquet:"occurrence_id"`
	CatalogNumber   *string `parquet:"catalog_number,optional"`
	InstitutionCode *string `parquet:"institution_code,optional"`
	ScientificName  string  `parquet:"scientific_name"`
	CountryCode     *string `parquet:"country_code,optional"`
	Locality        *string `parquet:"locality,optional"`

	DecimalLatitude  *float64 `parquet:"decimal_latitude,optional"`
	DecimalLongitude *float64 `parquet:"decimal_longitude,optional"`

	// Free-text dates
	EventDate         string `parquet:"event_date"`
	VerbatimEventDate string `parquet:"verbatim_event_date"`
	DateIdentified    string `parquet:"date_identified"`
}

// OccurrenceTextFields exposes the date-bearing text terms by name.
var OccurrenceTextFields = record.TextFields[OccurrenceRow]{
	"eventDate":         func(r *OccurrenceRow) string { return r.EventDate },
	"verbatimEventDate": func(r *OccurrenceRow) string { return r.VerbatimEventDate },
	"dateIdentified":    func(r *OccurrenceRow) string { return r.DateIdentified },
}
