package bids

import (
	"math/rand/v2"
	"slices"
	"strconv"
)

// bidsOf is a helper for test to create bids from titles, ids are the position
// in the list.
func bidsOf(titles ...string) []Bid {
	bids := make([]Bid, len(titles))
	for i, t := range titles {
		bids[i] = NewBid(strconv.Itoa(i), t, "General Fund")
	}
	return bids
}

// titles returns the titles of bids, in order.
func titles(bids []Bid) []string {
	res := make([]string, len(bids))
	for i, b := range bids {
		res[i] = b.Title
	}
	return res
}

// sortedIDs returns the ids of bids in lexicographic order, to compare the
// content of two slices regardless of their order.
func sortedIDs(bids []Bid) []string {
	res := make([]string, len(bids))
	for i, b := range bids {
		res[i] = b.ID + "/" + b.Title
	}
	slices.Sort(res)
	return res
}

// randomBids returns n bids with titles drawn from a small alphabet so that
// ties are frequent.
func randomBids(r *rand.Rand, n, alphabet int) []Bid {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = "title-" + strconv.Itoa(r.IntN(alphabet))
	}
	return bidsOf(titles...)
}
