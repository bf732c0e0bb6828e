// Package bids loads bid records from the monthly sales CSV export and sorts
// them in memory by title.
//
// The core functionalities include:
//   - Loading: decoding the CSV export into a slice of Bid (LoadBids,
//     DecodeBids), amounts parsed as exact decimal Money.
//   - Sorting: in place selection sort (SelectionSort) and quicksort
//     (QuickSort, Partition) over the Title, both O(1) in extra memory and
//     neither of them stable.
//   - Encoding: writing bids as JSONL (EncodeBids) and querying their JSON
//     form with JSONPath (QueryBids).
//
// This package serves as the foundational logic for the `bidsort`
// command-line tool.
package bids
