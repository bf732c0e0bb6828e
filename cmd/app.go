// Package cmd implements the CLI application to load and sort bids.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bids"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

const (
	EnvCSVPath     = "BIDS_CSV_PATH"
	defaultCSVPath = "eBid_Monthly_Sales.csv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loadCmd{}, "bids")
	c.Register(&displayCmd{}, "bids")
	c.Register(&queryCmd{}, "bids")

	c.Register(&sortCmd{}, "sorting")
	c.Register(&benchCmd{}, "sorting")
	c.Register(&menuCmd{}, "sorting")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var csvPath = flag.String("csv-path", envOr(EnvCSVPath, defaultCSVPath), "Path to the CSV file of bids (env "+EnvCSVPath+")")
var Verbose = flag.Bool("v", false, "Log diagnostics to stderr")
var plain = flag.Bool("plain", false, "Print markdown as is, without terminal styling")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Setup applies global flags, it must be called after flag parsing.
func Setup() {
	log.SetFlags(0)
	log.SetPrefix("bidsort: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// DecodeBids loads bids from the app CSV path.
// Rows that could not be read are reported as a warning, the other bids are kept.
func DecodeBids() ([]bids.Bid, error) {
	return decodeBids(*csvPath)
}

func decodeBids(path string) ([]bids.Bid, error) {
	list, err := bids.LoadBids(path)
	if err != nil && len(list) == 0 {
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some rows were skipped: %v\n", err)
	}
	log.Printf("loaded %d bids from %q", len(list), path)
	return list, nil
}

// readBids reads bids from a JSONL file written by `sort -o` when from is
// set, from the app CSV path otherwise.
func readBids(from string) ([]bids.Bid, error) {
	if from == "" {
		return DecodeBids()
	}
	f, err := os.Open(from)
	if err != nil {
		return nil, fmt.Errorf("could not open bids file %q: %w", from, err)
	}
	defer f.Close()
	list, err := bids.DecodeBidsJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("invalid bids file %q: %w", from, err)
	}
	log.Printf("read %d bids from %q", len(list), from)
	return list, nil
}

// printMarkdown renders md for the terminal, or prints it as is with -plain.
func printMarkdown(w io.Writer, md string) {
	if *plain {
		fmt.Fprint(w, md)
		return
	}
	style := "dark"
	if color.NoColor {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
