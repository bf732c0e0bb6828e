package bids

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when sort bounds fall outside the bids.
var ErrInvalidRange = errors.New("invalid range")

// checkRange returns an ErrInvalidRange unless [begin, end] is a non empty
// range of valid indexes into bids.
func checkRange(bids []Bid, begin, end int) error {
	if begin < 0 || end >= len(bids) || begin > end {
		return fmt.Errorf("%w: [%d, %d] over %d bids", ErrInvalidRange, begin, end, len(bids))
	}
	return nil
}

// Partition rearranges bids[begin:end+1] around the title of the middle bid
// and returns a split index p, begin <= p <= end, such that every title in
// [begin, p] is lower or equal to the pivot and every title in [p+1, end] is
// greater or equal to it.
//
// Bids equal to the pivot may end up on either side.
func Partition(bids []Bid, begin, end int) (int, error) {
	if err := checkRange(bids, begin, end); err != nil {
		return 0, err
	}
	return partition(bids, begin, end), nil
}

func partition(bids []Bid, begin, end int) int {
	low, high := begin, end

	// the pivot value is captured once, the bid holding it moves during swaps.
	pivot := bids[begin+(end-begin)/2].Title

	for {
		for bids[low].Title < pivot {
			low++
		}
		for bids[high].Title > pivot {
			high--
		}
		if low >= high {
			return high
		}
		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}

// QuickSort sorts bids[begin:end+1] in place by title.
// Average performance is O(n log(n)), worst case O(n²). It is not stable.
//
// A range with begin >= end is already sorted, so QuickSort(bids, 0, len(bids)-1)
// is valid on an empty slice.
func QuickSort(bids []Bid, begin, end int) error {
	if begin >= end {
		return nil
	}
	if err := checkRange(bids, begin, end); err != nil {
		return err
	}
	quickSort(bids, begin, end)
	return nil
}

// quickSort recurses on the smaller half and loops on the larger one so that
// the stack depth stays under log2(n).
func quickSort(bids []Bid, begin, end int) {
	for begin < end {
		mid := partition(bids, begin, end)
		// [begin, mid] includes mid: the partition is weak.
		if mid-begin < end-mid {
			quickSort(bids, begin, mid)
			begin = mid + 1
		} else {
			quickSort(bids, mid+1, end)
			end = mid
		}
	}
}

// SelectionSort sorts bids in place by title.
// Performance is always O(n²) comparisons, with at most n-1 swaps. It is not stable.
func SelectionSort(bids []Bid) {
	for pos := 0; pos < len(bids)-1; pos++ {
		minIdx := pos
		for i := pos + 1; i < len(bids); i++ {
			if bids[i].Title < bids[minIdx].Title {
				minIdx = i
			}
		}
		if minIdx != pos {
			bids[pos], bids[minIdx] = bids[minIdx], bids[pos]
		}
	}
}

// IsSorted reports whether bids are in ascending title order.
func IsSorted(bids []Bid) bool {
	for i := 1; i < len(bids); i++ {
		if bids[i].Title < bids[i-1].Title {
			return false
		}
	}
	return true
}
