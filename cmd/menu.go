package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/bids"
	"github.com/etnz/bids/renderer"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to load, display and sort bids" }
func (*menuCmd) Usage() string {
	return `bidsort [-csv-path <file>] menu

  Starts an interactive menu to load the bids, display them and sort them
  with each algorithm, reporting the time taken by each step.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := newMenu(os.Stdin, stdout, *csvPath)
	m.run()
	return subcommands.ExitSuccess
}

// menu choices.
const (
	choiceLoad      = 1
	choiceDisplay   = 2
	choiceSelection = 3
	choiceQuick     = 4
	choiceExit      = 9
)

// menu is an interactive session over a single list of bids.
type menu struct {
	in   *bufio.Scanner
	out  io.Writer
	path string
	bids []bids.Bid

	title *color.Color
	warn  *color.Color
}

func newMenu(in io.Reader, out io.Writer, path string) *menu {
	return &menu{
		in:    bufio.NewScanner(in),
		out:   out,
		path:  path,
		title: color.New(color.FgCyan, color.Bold),
		warn:  color.New(color.FgYellow),
	}
}

// run loops until the exit choice or the end of the input.
func (m *menu) run() {
	for {
		m.printMenu()
		choice, ok := m.readChoice()
		if !ok {
			fmt.Fprintln(m.out)
			break
		}
		if choice == choiceExit {
			break
		}
		m.do(choice)
	}
	fmt.Fprintln(m.out, "Good bye.")
}

func (m *menu) printMenu() {
	m.title.Fprintln(m.out, "Menu:")
	fmt.Fprintln(m.out, "  1. Load Bids")
	fmt.Fprintln(m.out, "  2. Display All Bids")
	fmt.Fprintln(m.out, "  3. Selection Sort All Bids")
	fmt.Fprintln(m.out, "  4. Quick Sort All Bids")
	fmt.Fprintln(m.out, "  9. Exit")
	fmt.Fprint(m.out, "Enter choice: ")
}

// readChoice reads the next line as a choice. It returns -1 for a line that
// is not a number, false at the end of the input.
func (m *menu) readChoice() (int, bool) {
	if !m.in.Scan() {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
	if err != nil {
		return -1, true
	}
	return choice, true
}

func (m *menu) do(choice int) {
	switch choice {
	case choiceLoad:
		m.load()
	case choiceDisplay:
		for _, b := range m.bids {
			fmt.Fprintln(m.out, renderer.BidLine(b))
		}
		fmt.Fprintln(m.out)
	case choiceSelection:
		m.sort(bids.Selection)
	case choiceQuick:
		m.sort(bids.Quick)
	default:
		m.warn.Fprintln(m.out, "Invalid choice, try again.")
	}
}

func (m *menu) load() {
	fmt.Fprintf(m.out, "Loading CSV file %s\n", m.path)
	var list []bids.Bid
	var err error
	timing := renderer.Measure("Loading bids", 0, func() {
		list, err = decodeBids(m.path)
	})
	if err != nil {
		// keep the bids of the previous load
		m.warn.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	m.bids = list
	timing.Count = len(m.bids)
	fmt.Fprintf(m.out, "%d bids read\n", len(m.bids))
	printMarkdown(m.out, renderer.TimingMarkdown(timing))
}

func (m *menu) sort(algo bids.Algorithm) {
	timing, err := timeSort(m.bids, algo)
	if err != nil {
		m.warn.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	printMarkdown(m.out, renderer.TimingMarkdown(timing))
}
