package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/etnz/bids"
	"github.com/etnz/bids/renderer"
	"github.com/google/subcommands"
)

type benchCmd struct{}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "compare the sort algorithms on the same bids" }
func (*benchCmd) Usage() string {
	return `bidsort bench

  Loads the bids once, then sorts an identical copy with each algorithm and
  prints the time each one took.
`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {}

func (c *benchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list, err := DecodeBids()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	timings := make([]renderer.Timing, 0, len(bids.Algorithms))
	for _, algo := range bids.Algorithms {
		sorted := slices.Clone(list)
		timing, err := timeSort(sorted, algo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error sorting bids with %s: %v\n", algo, err)
			return subcommands.ExitFailure
		}
		if !bids.IsSorted(sorted) {
			fmt.Fprintf(os.Stderr, "Error: %s sort did not sort the bids\n", algo)
			return subcommands.ExitFailure
		}
		log.Printf("%s sort: %v", algo, timing.Elapsed)
		timings = append(timings, timing)
	}

	printMarkdown(stdout, renderer.BenchMarkdown(len(list), timings))
	return subcommands.ExitSuccess
}
