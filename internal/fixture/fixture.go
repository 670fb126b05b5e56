// Package fixture builds small occurrence Parquet files covering every
// supported date shape, for tests and local experiments.
package fixture

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/occload/internal/model"
)

// eventDates cycles through each catalog format plus blanks and failures.
var eventDates = []string{
	"1895",
	"1895-06",
	"1895-06-15",
	"Jul 6 1987",
	"1987 Jul 6",
	"6 Jul 1987",
	"Jun 1895",
	"Jun",
	"",
	"2021-02-30",
	"not a date",
	"1999-12-31",
}

var taxa = []string{"Quercus alba", "Acer saccharum", "Puma concolor", "Carex sp.", "Picea glauca"}

// Unparseable reports whether s is one of the fixture dates no format accepts.
func Unparseable(s string) bool {
	return s == "2021-02-30" || s == "not a date"
}

// Occurrences returns n deterministic occurrence rows.
func Occurrences(n int) []model.OccurrenceRow {
	rows := make([]model.OccurrenceRow, n)
	for i := range rows {
		cat := fmt.Sprintf("%06d", i+1)
		inst := "trt"
		cc := "ca"
		lat := 43.0 + float64(i%90)/100
		lon := -79.0 - float64(i%90)/100
		date := eventDates[i%len(eventDates)]
		rows[i] = model.OccurrenceRow{
			OccurrenceID:      "urn:catalog:TRT:" + cat,
			CatalogNumber:     &cat,
			InstitutionCode:   &inst,
			ScientificName:    taxa[i%len(taxa)],
			CountryCode:       &cc,
			DecimalLatitude:   &lat,
			DecimalLongitude:  &lon,
			EventDate:         date,
			VerbatimEventDate: date,
			DateIdentified:    eventDates[(i+3)%len(eventDates)],
		}
	}
	return rows
}

// Write writes rows to a new Parquet file at path.
func Write(path string, rows []model.OccurrenceRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.OccurrenceRow](f)
	if _, err := w.Write(rows); err != nil {
		return fmt.Errorf("write fixture rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close fixture writer: %w", err)
	}
	return f.Close()
}
