package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/gyeh/occload/internal/model"
	"github.com/gyeh/occload/internal/record"
)

func newEventDates(t *testing.T) *DateProcessor[model.OccurrenceRow, model.StagingRow] {
	t.Helper()
	dp, err := NewDateProcessor(DefaultDateFields(), model.OccurrenceTextFields, model.StagingIntFields)
	if err != nil {
		t.Fatalf("NewDateProcessor: %v", err)
	}
	return dp
}

func TestProcessRecord_WritesAllThreeFields(t *testing.T) {
	dp := newEventDates(t)
	in := &model.OccurrenceRow{EventDate: "Jun 1895"}
	out := &model.StagingRow{}
	var res ProcessingResult
	if err := dp.ProcessRecord(in, out, &res); err != nil {
		t.Fatalf("ProcessRecord: %v", err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors())
	}
	if out.Year == nil || *out.Year != 1895 || out.Month == nil || *out.Month != 6 || out.Day != nil {
		t.Errorf("got year=%v month=%v day=%v", out.Year, out.Month, out.Day)
	}
}

func TestProcessRecord_UnparseableWritesNil(t *testing.T) {
	dp := newEventDates(t)
	y, m, d := 1, 2, 3
	in := &model.OccurrenceRow{EventDate: "spring 1987"}
	out := &model.StagingRow{Year: &y, Month: &m, Day: &d}
	var res ProcessingResult
	if err := dp.ProcessRecord(in, out, &res); err != nil {
		t.Fatalf("ProcessRecord: %v", err)
	}
	if out.Year != nil || out.Month != nil || out.Day != nil {
		t.Errorf("expected nil fields, got %v/%v/%v", out.Year, out.Month, out.Day)
	}
	if len(res.Errors()) != 1 || !strings.Contains(res.Errors()[0], "spring 1987") {
		t.Errorf("unexpected errors: %v", res.Errors())
	}
}

func TestProcessRecord_CustomFields(t *testing.T) {
	fields := DateFields{Date: "dateIdentified", Year: "identifiedYear", Month: "identifiedMonth", Day: "identifiedDay"}
	dp, err := NewDateProcessor(fields, model.OccurrenceTextFields, model.StagingIntFields)
	if err != nil {
		t.Fatalf("NewDateProcessor: %v", err)
	}
	in := &model.OccurrenceRow{EventDate: "1900", DateIdentified: "1987 Jul 6"}
	out := &model.StagingRow{}
	if err := dp.ProcessRecord(in, out, nil); err != nil {
		t.Fatalf("ProcessRecord: %v", err)
	}
	if out.Year != nil {
		t.Errorf("event year written by identification processor: %d", *out.Year)
	}
	if out.IdentifiedYear == nil || *out.IdentifiedYear != 1987 || *out.IdentifiedMonth != 7 || *out.IdentifiedDay != 6 {
		t.Errorf("got %v/%v/%v", out.IdentifiedYear, out.IdentifiedMonth, out.IdentifiedDay)
	}
}

func TestNewDateProcessor_UnknownFields(t *testing.T) {
	fields := DateFields{Date: "eventdate", Year: "year", Month: "mnth", Day: "day"}
	_, err := NewDateProcessor(fields, model.OccurrenceTextFields, model.StagingIntFields)
	if err == nil {
		t.Fatal("expected error for unknown fields")
	}
	if !errors.Is(err, record.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	for _, name := range []string{"eventdate", "mnth"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %q", err, name)
		}
	}
}

func TestProcessRecord_NilRecord(t *testing.T) {
	dp := newEventDates(t)
	var res ProcessingResult
	err := dp.ProcessRecord(nil, &model.StagingRow{}, &res)
	if !errors.Is(err, ErrNilRecord) {
		t.Fatalf("expected ErrNilRecord, got %v", err)
	}
	if res.HasErrors() {
		t.Errorf("configuration error leaked into sink: %v", res.Errors())
	}
}
