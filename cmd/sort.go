package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bids"
	"github.com/etnz/bids/renderer"
	"github.com/google/subcommands"
)

type sortCmd struct {
	algo   string
	limit  int
	output string
	from   string
	check  bool
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort the bids by title and report how long it took" }
func (*sortCmd) Usage() string {
	return `bidsort sort [-algo selection|quick] [-n <count>] [-o <file.jsonl>] [-from <file.jsonl>] [-check]

  Loads the bids, sorts them by title with the chosen algorithm and reports
  the time spent sorting.

Usage Examples:
# Sort with quicksort and show the first ten bids.
$ bidsort sort -algo quick -n 10

# Sort with selection sort and save the result.
$ bidsort sort -algo selection -o sorted.jsonl

# Sort a saved result again, without reading the CSV file.
$ bidsort sort -from sorted.jsonl -check
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.algo, "algo", "quick", "Sort algorithm (selection, quick).")
	f.IntVar(&c.limit, "n", 0, "Number of sorted bids to display, none by default.")
	f.StringVar(&c.output, "o", "", "Write the sorted bids to this file in JSONL format.")
	f.StringVar(&c.from, "from", "", "Read the bids from this JSONL file instead of the CSV file.")
	f.BoolVar(&c.check, "check", false, "Verify that the result is sorted.")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	algo, err := bids.ParseAlgorithm(c.algo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	list, err := readBids(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	timing, err := timeSort(list, algo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sorting bids: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.check && !bids.IsSorted(list) {
		fmt.Fprintf(os.Stderr, "Error: %s sort did not sort the bids\n", algo)
		return subcommands.ExitFailure
	}

	printMarkdown(stdout, renderer.TimingMarkdown(timing))
	if c.limit > 0 {
		printMarkdown(stdout, renderer.BidsMarkdown("Sorted bids", list, c.limit))
	}

	if c.output != "" {
		if err := writeBids(c.output, list); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Successfully wrote %d bids to %s\n", len(list), c.output)
	}
	return subcommands.ExitSuccess
}

// timeSort sorts list in place and measures it.
func timeSort(list []bids.Bid, algo bids.Algorithm) (renderer.Timing, error) {
	var err error
	timing := renderer.Measure(operationName(algo), len(list), func() {
		err = bids.Sort(list, algo)
	})
	return timing, err
}

func operationName(algo bids.Algorithm) string {
	switch algo {
	case bids.Selection:
		return "Selection Sort"
	case bids.Quick:
		return "Quick Sort"
	default:
		return algo.String()
	}
}

// writeBids writes list in a JSONL file, replacing it.
func writeBids(filename string, list []bids.Bid) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file %q: %w", filename, err)
	}
	if err := bids.EncodeBids(f, list); err != nil {
		f.Close()
		return fmt.Errorf("error writing to file %q: %w", filename, err)
	}
	return f.Close()
}
