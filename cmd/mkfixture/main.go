// mkfixture writes a small occurrence Parquet fixture whose dates cover every
// supported format, blanks, and unparseable values.
// Usage: go run ./cmd/mkfixture --out testdata/occurrences-small.parquet --rows 200
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gyeh/occload/internal/fixture"
	"github.com/gyeh/occload/internal/normalize"
)

func main() {
	out := flag.String("out", "testdata/occurrences-small.parquet", "output parquet")
	rows := flag.Int("rows", 200, "rows to write")
	flag.Parse()

	if *rows <= 0 {
		fmt.Fprintln(os.Stderr, "--rows must be positive")
		os.Exit(1)
	}

	occ := fixture.Occurrences(*rows)
	if err := fixture.Write(*out, occ); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	p := normalize.NewDateParser()
	counts := make(map[string]int)
	for _, r := range occ {
		pd, err := p.Parse(r.EventDate)
		switch {
		case err == normalize.ErrBlank:
			counts["blank"]++
		case err != nil:
			counts["error"]++
		default:
			counts[pd.Granularity().String()]++
		}
	}

	fmt.Printf("Wrote %d rows to %s\n", len(occ), *out)
	fmt.Println("eventDate distribution:")
	for _, g := range []string{"full-date", "year-month", "year", "month", "blank", "error"} {
		if c := counts[g]; c > 0 {
			fmt.Printf("  %-10s %d\n", g, c)
		}
	}
}
