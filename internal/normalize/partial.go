package normalize

import "fmt"

// PartialDate holds the known components of a date. A nil component is
// unknown. Day implies Month; Month implies Year except for month-only
// dates such as "Jun".
type PartialDate struct {
	Year  *int
	Month *int
	Day   *int
}

// IsZero reports whether no component is set.
func (d PartialDate) IsZero() bool {
	return d.Year == nil && d.Month == nil && d.Day == nil
}

// Granularity derives the granularity from the components that are set.
func (d PartialDate) Granularity() Granularity {
	switch {
	case d.Year != nil && d.Month != nil && d.Day != nil:
		return FullDate
	case d.Year != nil && d.Month != nil:
		return YearMonth
	case d.Year != nil:
		return YearOnly
	case d.Month != nil:
		return MonthOnly
	}
	return GranularityUnknown
}

// String formats the date ISO-style, truncated to its granularity.
func (d PartialDate) String() string {
	switch d.Granularity() {
	case FullDate:
		return fmt.Sprintf("%04d-%02d-%02d", *d.Year, *d.Month, *d.Day)
	case YearMonth:
		return fmt.Sprintf("%04d-%02d", *d.Year, *d.Month)
	case YearOnly:
		return fmt.Sprintf("%04d", *d.Year)
	case MonthOnly:
		return fmt.Sprintf("--%02d", *d.Month)
	}
	return ""
}

// Equal compares two partial dates component by component.
func (d PartialDate) Equal(o PartialDate) bool {
	return eqInt(d.Year, o.Year) && eqInt(d.Month, o.Month) && eqInt(d.Day, o.Day)
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
