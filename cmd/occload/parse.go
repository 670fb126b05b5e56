package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/occload/internal/exitcode"
	"github.com/gyeh/occload/internal/normalize"
)

var parseCmd = &cobra.Command{
	Use:   "parse [date...]",
	Short: "Parse free-text dates and print their year/month/day",
	Long:  "Parses each argument, or each line of stdin when no arguments are given, and prints the resulting partial date.",
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		inputs = lines
	}

	failed := printParsed(cmd.OutOrStdout(), normalize.NewDateParser(), inputs)
	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d dates could not be parsed\n", failed, len(inputs))
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// printParsed writes one row per input and returns the number of failures.
func printParsed(w io.Writer, p *normalize.DateParser, inputs []string) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tYEAR\tMONTH\tDAY\tGRANULARITY")
	failed := 0
	for _, in := range inputs {
		var pd normalize.PartialDate
		var res normalize.ProcessingResult
		p.Process(in, &pd, &res)
		gran := pd.Granularity().String()
		switch {
		case res.HasErrors():
			failed++
			gran = "error"
		case pd.IsZero():
			gran = "blank"
		}
		fmt.Fprintf(tw, "%q\t%s\t%s\t%s\t%s\n", in, cell(pd.Year), cell(pd.Month), cell(pd.Day), gran)
	}
	tw.Flush()
	return failed
}

func cell(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
