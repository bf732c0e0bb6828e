package bids

import "fmt"

// Algorithm selects the sorting algorithm used by Sort.
type Algorithm int

const (
	// Selection repeatedly swaps the smallest remaining title into place.
	Selection Algorithm = iota
	// Quick partitions around the middle title and sorts each half.
	Quick
)

// Algorithms lists all the algorithms, in menu order.
var Algorithms = []Algorithm{Selection, Quick}

func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "selection"
	case Quick:
		return "quick"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses a string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "selection":
		return Selection, nil
	case "quick", "quicksort":
		return Quick, nil
	default:
		return 0, fmt.Errorf("unknown sort algorithm: %q", s)
	}
}

// Sort sorts all bids in place by title using the given algorithm.
func Sort(bids []Bid, algo Algorithm) error {
	if len(bids) < 2 {
		return nil
	}
	switch algo {
	case Selection:
		SelectionSort(bids)
		return nil
	case Quick:
		return QuickSort(bids, 0, len(bids)-1)
	default:
		return fmt.Errorf("unknown sort algorithm: %d", algo)
	}
}
