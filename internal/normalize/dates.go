package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrBlank is returned by Parse when the input holds nothing to parse.
	ErrBlank = errors.New("blank date")
	// ErrUnparseable is returned by Parse when no catalog pattern matches.
	ErrUnparseable = errors.New("unparseable date")
)

// Granularity records which components a matched date carries.
type Granularity int

const (
	GranularityUnknown Granularity = iota
	FullDate
	YearMonth
	YearOnly
	MonthOnly
)

func (g Granularity) String() string {
	switch g {
	case FullDate:
		return "full-date"
	case YearMonth:
		return "year-month"
	case YearOnly:
		return "year"
	case MonthOnly:
		return "month"
	}
	return "unknown"
}

// layout is a single time.Parse layout and the granularity it yields.
type layout struct {
	pattern     string
	granularity Granularity
}

// FormatSpec is one entry of the pattern catalog. Layouts are tried in order;
// month-name patterns carry an abbreviated and a full-name layout.
type FormatSpec struct {
	Name    string
	layouts []layout
}

// parseOutcome is the result of a successful match.
type parseOutcome struct {
	value       time.Time
	granularity Granularity
}

// match attempts a strict, whole-string match of text against the entry.
// Semantically invalid values (day 32, Feb 30) are rejected by time.Parse.
func (f FormatSpec) match(text string) (parseOutcome, bool) {
	for _, l := range f.layouts {
		if t, err := time.Parse(l.pattern, text); err == nil {
			return parseOutcome{value: t, granularity: l.granularity}, true
		}
	}
	return parseOutcome{}, false
}

// dateCatalog is tried top to bottom; the first match wins. Month names use
// the English table built into the time package (case-insensitive).
var dateCatalog = []FormatSpec{
	{Name: "yyyy[-MM[-dd]]", layouts: []layout{
		{"2006-1-2", FullDate},
		{"2006-1", YearMonth},
		{"2006", YearOnly},
	}},
	{Name: "MMM d[d] yyyy", layouts: []layout{
		{"Jan 2 2006", FullDate},
		{"January 2 2006", FullDate},
	}},
	{Name: "yyyy MMM d[d]", layouts: []layout{
		{"2006 Jan 2", FullDate},
		{"2006 January 2", FullDate},
	}},
	{Name: "d[d] MMM yyyy", layouts: []layout{
		{"2 Jan 2006", FullDate},
		{"2 January 2006", FullDate},
	}},
	{Name: "MMM yyyy", layouts: []layout{
		{"Jan 2006", YearMonth},
		{"January 2006", YearMonth},
	}},
	{Name: "MMM", layouts: []layout{
		{"Jan", MonthOnly},
		{"January", MonthOnly},
	}},
}

// Catalog returns the names of the recognized formats in trial order.
func Catalog() []string {
	names := make([]string, len(dateCatalog))
	for i, f := range dateCatalog {
		names[i] = f.Name
	}
	return names
}

// Resolve copies the components implied by g from value into out.
// Components not carried by g are set to nil.
func Resolve(value time.Time, g Granularity, out *PartialDate) {
	var pd PartialDate
	switch g {
	case FullDate:
		pd = PartialDate{Year: intPtr(value.Year()), Month: intPtr(int(value.Month())), Day: intPtr(value.Day())}
	case YearMonth:
		pd = PartialDate{Year: intPtr(value.Year()), Month: intPtr(int(value.Month()))}
	case YearOnly:
		pd = PartialDate{Year: intPtr(value.Year())}
	case MonthOnly:
		pd = PartialDate{Month: intPtr(int(value.Month()))}
	default:
		panic(fmt.Sprintf("normalize: unsupported granularity %d", int(g)))
	}
	*out = pd
}

// DateParser turns free-text dates, including partial ones, into a
// PartialDate. It holds no mutable state and is safe for concurrent use.
type DateParser struct {
	catalog []FormatSpec
}

// NewDateParser returns a parser over the shared format catalog.
func NewDateParser() *DateParser {
	return &DateParser{catalog: dateCatalog}
}

// Process parses text into out. Blank text is ignored. When no format
// matches, a single message naming text is added to sink (if non-nil) and
// out is left untouched.
func (p *DateParser) Process(text string, out *PartialDate, sink ErrorSink) {
	s := strings.TrimSpace(text)
	if s == "" {
		return
	}
	for _, f := range p.catalog {
		if o, ok := f.match(s); ok {
			Resolve(o.value, o.granularity, out)
			return
		}
	}
	if sink != nil {
		sink.AddError(fmt.Sprintf("the date [%s] could not be processed", text))
	}
}

// Parse is the error-returning form of Process.
func (p *DateParser) Parse(text string) (PartialDate, error) {
	if strings.TrimSpace(text) == "" {
		return PartialDate{}, ErrBlank
	}
	var (
		pd  PartialDate
		res ProcessingResult
	)
	p.Process(text, &pd, &res)
	if res.HasErrors() {
		return PartialDate{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	return pd, nil
}

func intPtr(v int) *int {
	return &v
}
