package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bids"
	"github.com/google/subcommands"
)

type queryCmd struct {
	query string
	algo  string
	from  string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the bids with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `bidsort query -q <jsonpath> [-algo selection|quick] [-from <file.jsonl>]

  Evaluates a JSONPath expression over the bids, optionally sorted first, and
  prints the result as JSON. Bids are objects with "id", "title", "fund" and
  "amount" keys, an amount is an object with "currency" and "amount" keys.

Usage Examples:
# Titles of the first three bids in title order.
$ bidsort query -algo quick -q '$[0:3].title'

# Ids of the bids over $100.
$ bidsort query -q '$[?(@.amount.amount > 100)].id'

# Funds of a saved sort result.
$ bidsort query -from sorted.jsonl -q '$[*].fund'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath expression to evaluate (required).")
	f.StringVar(&c.algo, "algo", "", "Sort the bids with this algorithm (selection, quick) before the query.")
	f.StringVar(&c.from, "from", "", "Read the bids from this JSONL file instead of the CSV file.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query == "" {
		fmt.Fprintln(os.Stderr, "Error: -q is required")
		return subcommands.ExitUsageError
	}

	list, err := readBids(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.algo != "" {
		algo, err := bids.ParseAlgorithm(c.algo)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := bids.Sort(list, algo); err != nil {
			fmt.Fprintf(os.Stderr, "Error sorting bids: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	result, err := bids.QueryBids(list, c.query)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
