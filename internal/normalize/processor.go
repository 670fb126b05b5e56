package normalize

import (
	"errors"
	"fmt"

	cerrors "cloudeng.io/errors"

	"github.com/gyeh/occload/internal/record"
)

// ErrNilRecord is returned by ProcessRecord when either record is nil.
var ErrNilRecord = errors.New("nil record")

// DateFields names the input text field and the three output fields a
// DateProcessor reads and writes.
type DateFields struct {
	Date  string `yaml:"date"`
	Year  string `yaml:"year"`
	Month string `yaml:"month"`
	Day   string `yaml:"day"`
}

// DefaultDateFields maps the Darwin Core eventDate term onto year/month/day.
func DefaultDateFields() DateFields {
	return DateFields{Date: "eventDate", Year: "year", Month: "month", Day: "day"}
}

func (f DateFields) String() string {
	return fmt.Sprintf("%s -> %s/%s/%s", f.Date, f.Year, f.Month, f.Day)
}

// DateProcessor applies a DateParser to one named field of an input record
// and writes the result into three named fields of an output record.
type DateProcessor[In, Out any] struct {
	fields   DateFields
	parser   *DateParser
	getDate  func(*In) string
	setYear  func(*Out, *int)
	setMonth func(*Out, *int)
	setDay   func(*Out, *int)
}

// NewDateProcessor resolves every configured field name up front. All
// unresolvable names are reported together.
func NewDateProcessor[In, Out any](fields DateFields, in record.TextFields[In], out record.IntFields[Out]) (*DateProcessor[In, Out], error) {
	dp := &DateProcessor[In, Out]{fields: fields, parser: NewDateParser()}
	var errs cerrors.M
	var err error
	dp.getDate, err = in.Getter(fields.Date)
	errs.Append(err)
	dp.setYear, err = out.Setter(fields.Year)
	errs.Append(err)
	dp.setMonth, err = out.Setter(fields.Month)
	errs.Append(err)
	dp.setDay, err = out.Setter(fields.Day)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return nil, fmt.Errorf("date fields %v: %w", fields, err)
	}
	return dp, nil
}

// Fields returns the field names the processor was built with.
func (dp *DateProcessor[In, Out]) Fields() DateFields {
	return dp.fields
}

// ProcessRecord reads the date field from in and writes year, month and day
// to out. Components that are unknown, including all three when the date
// cannot be parsed, are written as nil. Parse failures go to sink; only
// misuse is returned as an error.
func (dp *DateProcessor[In, Out]) ProcessRecord(in *In, out *Out, sink ErrorSink) error {
	if in == nil || out == nil {
		return fmt.Errorf("date fields %v: %w", dp.fields, ErrNilRecord)
	}
	var pd PartialDate
	dp.parser.Process(dp.getDate(in), &pd, sink)
	dp.setYear(out, pd.Year)
	dp.setMonth(out, pd.Month)
	dp.setDay(out, pd.Day)
	return nil
}
