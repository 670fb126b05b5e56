package normalize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/occload/internal/model"
)

func strp(s string) *string { return &s }

func f64p(v float64) *float64 { return &v }

func sampleRow() *model.OccurrenceRow {
	return &model.OccurrenceRow{
		OccurrenceID:     "urn:catalog:TRTE:12345",
		CatalogNumber:    strp("12345"),
		InstitutionCode:  strp(" trt-e "),
		ScientificName:   "Quercus   alba",
		CountryCode:      strp("ca"),
		Locality:         strp("Mont Royal"),
		DecimalLatitude:  f64p(45.5071234567),
		DecimalLongitude: f64p(-73.5878),
		EventDate:        "Jul 6 1987",
		DateIdentified:   "1990",
	}
}

func TestToStagingRow(t *testing.T) {
	n, err := NewNormalizer([]DateFields{
		DefaultDateFields(),
		{Date: "dateIdentified", Year: "identifiedYear", Month: "identifiedMonth", Day: "identifiedDay"},
	})
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	batch := uuid.New()
	var issues []string
	s, err := n.ToStagingRow(sampleRow(), batch, 7, 1, func(field, msg string) {
		issues = append(issues, field+": "+msg)
	})
	if err != nil {
		t.Fatalf("ToStagingRow: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %v", issues)
	}
	if s.IngestBatchID != batch || s.SourceFileID != 7 || s.SourceRowNumber != 1 {
		t.Errorf("identity columns not copied: %+v", s)
	}
	if *s.Year != 1987 || *s.Month != 7 || *s.Day != 6 {
		t.Errorf("event date: got %d-%d-%d", *s.Year, *s.Month, *s.Day)
	}
	if *s.IdentifiedYear != 1990 || s.IdentifiedMonth != nil || s.IdentifiedDay != nil {
		t.Errorf("identified date: got %v/%v/%v", s.IdentifiedYear, s.IdentifiedMonth, s.IdentifiedDay)
	}
	if *s.InstitutionCode != "TRTE" {
		t.Errorf("institution code: got %q", *s.InstitutionCode)
	}
	if *s.CountryCode != "CA" {
		t.Errorf("country code: got %q", *s.CountryCode)
	}
	if *s.ScientificNameNorm != "quercus alba" {
		t.Errorf("scientific name norm: got %q", *s.ScientificNameNorm)
	}
	if *s.DecimalLatitude != 45.507123 {
		t.Errorf("latitude: got %v", *s.DecimalLatitude)
	}
	if len(s.SourceRowHash) != 32 {
		t.Errorf("row hash length: got %d", len(s.SourceRowHash))
	}
}

func TestToStagingRow_UnparseableDateIsIssue(t *testing.T) {
	n, err := NewNormalizer(nil)
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	row := sampleRow()
	row.EventDate = "summer of '69"
	var fields, msgs []string
	s, err := n.ToStagingRow(row, uuid.New(), 1, 3, func(field, msg string) {
		fields = append(fields, field)
		msgs = append(msgs, msg)
	})
	if err != nil {
		t.Fatalf("ToStagingRow: %v", err)
	}
	if s.Year != nil || s.Month != nil || s.Day != nil {
		t.Errorf("expected nil date columns")
	}
	if len(msgs) != 1 || fields[0] != "eventDate" || !strings.Contains(msgs[0], "summer of '69") {
		t.Errorf("unexpected issues: %v %v", fields, msgs)
	}
}

func TestToStagingRow_NilIssueFunc(t *testing.T) {
	n, _ := NewNormalizer(nil)
	row := sampleRow()
	row.EventDate = "garbage"
	if _, err := n.ToStagingRow(row, uuid.New(), 1, 1, nil); err != nil {
		t.Fatalf("ToStagingRow: %v", err)
	}
}

func TestToStagingRow_MissingOccurrenceID(t *testing.T) {
	n, _ := NewNormalizer(nil)
	row := sampleRow()
	row.OccurrenceID = ""
	if _, err := n.ToStagingRow(row, uuid.New(), 1, 1, nil); err == nil {
		t.Fatal("expected error for missing occurrence id")
	}
}

func TestNewNormalizer_BadFields(t *testing.T) {
	_, err := NewNormalizer([]DateFields{{Date: "eventDate", Year: "yr", Month: "month", Day: "day"}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRowHash_Stable(t *testing.T) {
	a := RowHash(1, "a", " b ")
	b := RowHash(1, "a", "b")
	c := RowHash(2, "a", "b")
	if !bytes.Equal(a, b) {
		t.Error("hash should ignore surrounding whitespace")
	}
	if bytes.Equal(b, c) {
		t.Error("hash should depend on row number")
	}
}

func TestNormalizeCountryCode(t *testing.T) {
	tests := []struct {
		in   *string
		want string
	}{
		{nil, ""},
		{strp(" us "), "US"},
		{strp("C.A."), "CA"},
		{strp("USA"), ""},
		{strp("1"), ""},
	}
	for _, tt := range tests {
		got := NormalizeCountryCode(tt.in)
		if derefStr(got) != tt.want {
			t.Errorf("%v: got %q, want %q", derefStr(tt.in), derefStr(got), tt.want)
		}
	}
}

func TestNormalizeScientificName(t *testing.T) {
	tests := map[string]string{
		"Quercus alba":     "quercus alba",
		"  Quercus  sp. ":  "quercus",
		"Carex spp":        "carex",
		"Puma concolor":    "puma concolor",
		"":                 "",
		"Picea cf. glauca": "picea cf. glauca",
	}
	for in, want := range tests {
		if got := derefStr(NormalizeScientificName(in)); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCoordinates(t *testing.T) {
	if NormalizeLatitude(f64p(91)) != nil {
		t.Error("latitude 91 should be rejected")
	}
	if NormalizeLongitude(f64p(-180.5)) != nil {
		t.Error("longitude -180.5 should be rejected")
	}
	if got := NormalizeLongitude(f64p(-180)); got == nil || *got != -180 {
		t.Errorf("longitude -180: got %v", got)
	}
	if NormalizeLatitude(nil) != nil {
		t.Error("nil latitude should stay nil")
	}
}
