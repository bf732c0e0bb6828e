package renderer

import (
	"fmt"
	"time"

	"github.com/etnz/bids"
)

// bidList is the data of the bids.md template.
type bidList struct {
	Title string
	Total int
	Shown int
	Bids  []bids.Bid
}

// BidsMarkdown renders a table of the first limit bids.
// A limit lower or equal to zero renders all of them.
func BidsMarkdown(title string, list []bids.Bid, limit int) string {
	shown := list
	if limit > 0 && limit < len(list) {
		shown = list[:limit]
	}
	data := bidList{Title: title, Total: len(list), Shown: len(shown), Bids: shown}
	partials := map[string]string{
		"bid_row": "bid_row.md",
	}
	return renderTemplate("bids", "bids.md", partials, data)
}

// BidLine renders a bid on a single line, as "id: title | amount | fund".
func BidLine(b bids.Bid) string {
	return fmt.Sprintf("%s: %s | %s | %s", b.ID, b.Title, b.Amount, b.Fund)
}

// Timing is the measure of a single operation over a number of bids.
type Timing struct {
	Operation string
	Count     int
	Elapsed   time.Duration
}

// Measure runs f and returns its Timing.
func Measure(operation string, count int, f func()) Timing {
	start := time.Now()
	f()
	return Timing{Operation: operation, Count: count, Elapsed: time.Since(start)}
}

// TimingMarkdown renders a short report for one operation.
func TimingMarkdown(t Timing) string {
	return renderTemplate("timing", "timing.md", nil, t)
}

// benchmark is the data of the bench.md template.
type benchmark struct {
	Count   int
	Timings []Timing
}

// BenchMarkdown renders a comparison table of several operations run on the
// same number of bids.
func BenchMarkdown(count int, timings []Timing) string {
	return renderTemplate("bench", "bench.md", nil, benchmark{Count: count, Timings: timings})
}
