package bids

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sorters run a full sort with each algorithm.
var sorters = map[string]func([]Bid){
	"selection": SelectionSort,
	"quick": func(bids []Bid) {
		if err := QuickSort(bids, 0, len(bids)-1); err != nil {
			panic(err)
		}
	},
}

func TestSort_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		expected []string
	}{
		{
			name:     "three distinct titles",
			titles:   []string{"Banana", "Apple", "Cherry"},
			expected: []string{"Apple", "Banana", "Cherry"},
		},
		{
			name:     "ties",
			titles:   []string{"B", "B", "A"},
			expected: []string{"A", "B", "B"},
		},
		{
			name:     "single",
			titles:   []string{"X"},
			expected: []string{"X"},
		},
		{
			name:     "reverse sorted",
			titles:   []string{"E", "D", "C", "B", "A"},
			expected: []string{"A", "B", "C", "D", "E"},
		},
		{
			name:     "already sorted",
			titles:   []string{"A", "B", "C", "D"},
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name:     "all equal",
			titles:   []string{"Z", "Z", "Z", "Z", "Z"},
			expected: []string{"Z", "Z", "Z", "Z", "Z"},
		},
		{
			name:     "two elements",
			titles:   []string{"b", "a"},
			expected: []string{"a", "b"},
		},
		{
			name:     "byte order",
			titles:   []string{"apple", "Banana", "_x", "Apple"},
			expected: []string{"Apple", "Banana", "_x", "apple"},
		},
		{
			name:     "empty",
			titles:   []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		for algo, sort := range sorters {
			t.Run(algo+"/"+tt.name, func(t *testing.T) {
				bids := bidsOf(tt.titles...)
				sort(bids)
				if diff := cmp.Diff(tt.expected, titles(bids)); diff != "" {
					t.Errorf("%s sort mismatch (-want +got):\n%s", algo, diff)
				}
			})
		}
	}
}

func TestSort_Invariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for algo, sort := range sorters {
		t.Run(algo, func(t *testing.T) {
			for n := range 60 {
				for _, alphabet := range []int{1, 3, 1000} {
					bids := randomBids(r, n, alphabet)
					before := sortedIDs(bids)

					sort(bids)

					if !IsSorted(bids) {
						t.Fatalf("n=%d alphabet=%d: not sorted: %v", n, alphabet, titles(bids))
					}
					if diff := cmp.Diff(before, sortedIDs(bids)); diff != "" {
						t.Fatalf("n=%d alphabet=%d: not a permutation (-before +after):\n%s", n, alphabet, diff)
					}

					// sorting again keeps the order
					once := titles(bids)
					sort(bids)
					if diff := cmp.Diff(once, titles(bids)); diff != "" {
						t.Fatalf("n=%d alphabet=%d: second sort changed the order:\n%s", n, alphabet, diff)
					}
				}
			}
		})
	}
}

func TestSelectionSort_FirstMinimum(t *testing.T) {
	// positions 1 and 3 hold the minimum, the first one must be picked
	bids := bidsOf("C", "A", "B", "A")
	SelectionSort(bids)

	got := []string{bids[0].ID, bids[1].ID}
	if want := []string{"1", "3"}; !slices.Equal(got, want) {
		t.Errorf("SelectionSort() ids = %v, want %v", got, want)
	}
}

func TestSelectionSort_NoSwapOnEqual(t *testing.T) {
	bids := bidsOf("A", "A", "A")
	SelectionSort(bids)
	for i, b := range bids {
		if b.ID != strconv.Itoa(i) {
			t.Errorf("SelectionSort() moved bid %s to position %d", b.ID, i)
		}
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		titles     []string
		begin, end int
	}{
		{name: "full", titles: []string{"E", "D", "C", "B", "A"}, begin: 0, end: 4},
		{name: "sub range", titles: []string{"Z", "D", "A", "C", "B", "A"}, begin: 1, end: 4},
		{name: "two equal", titles: []string{"B", "B"}, begin: 0, end: 1},
		{name: "all equal", titles: []string{"Q", "Q", "Q", "Q"}, begin: 0, end: 3},
		{name: "single", titles: []string{"X"}, begin: 0, end: 0},
		{name: "ties", titles: []string{"B", "B", "A"}, begin: 0, end: 2},
		{name: "pivot moves", titles: []string{"C", "A", "B", "D", "A", "C"}, begin: 0, end: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkPartition(t, bidsOf(tt.titles...), tt.begin, tt.end)
		})
	}
}

func TestPartition_Random(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 500 {
		n := 1 + r.IntN(40)
		bids := randomBids(r, n, 1+r.IntN(8))
		begin := r.IntN(n)
		end := begin + r.IntN(n-begin)
		checkPartition(t, bids, begin, end)
	}
}

// checkPartition runs Partition and checks the weak partition contract.
func checkPartition(t *testing.T, bids []Bid, begin, end int) {
	t.Helper()
	pivot := bids[(begin+end)/2].Title
	orig := slices.Clone(bids)

	p, err := Partition(bids, begin, end)
	if err != nil {
		t.Fatalf("Partition(%v, %d, %d) unexpected error: %v", titles(orig), begin, end, err)
	}
	if p < begin || p > end || (begin < end && p == end) {
		t.Fatalf("Partition(%v, %d, %d) = %d, out of range", titles(orig), begin, end, p)
	}
	for i := begin; i <= p; i++ {
		if bids[i].Title > pivot {
			t.Errorf("Partition(%v, %d, %d) = %d: title[%d] = %q > pivot %q", titles(orig), begin, end, p, i, bids[i].Title, pivot)
		}
	}
	for j := p + 1; j <= end; j++ {
		if bids[j].Title < pivot {
			t.Errorf("Partition(%v, %d, %d) = %d: title[%d] = %q < pivot %q", titles(orig), begin, end, p, j, bids[j].Title, pivot)
		}
	}
	// outside of the range nothing moves
	for i := range bids {
		if (i < begin || i > end) && bids[i].ID != orig[i].ID {
			t.Errorf("Partition(%v, %d, %d) moved bid %d outside the range", titles(orig), begin, end, i)
		}
	}
	if diff := cmp.Diff(sortedIDs(orig), sortedIDs(bids)); diff != "" {
		t.Errorf("Partition() is not a permutation (-before +after):\n%s", diff)
	}
}

func TestPartition_InvalidRange(t *testing.T) {
	bids := bidsOf("C", "B", "A")
	tests := []struct {
		name       string
		begin, end int
	}{
		{"negative begin", -1, 2},
		{"end too large", 0, 3},
		{"begin after end", 2, 1},
		{"both outside", 5, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(bids, tt.begin, tt.end)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Partition(%d, %d) error = %v, want ErrInvalidRange", tt.begin, tt.end, err)
			}
			if diff := cmp.Diff([]string{"C", "B", "A"}, titles(bids)); diff != "" {
				t.Errorf("Partition() modified bids on error:\n%s", diff)
			}
		})
	}

	if _, err := Partition(nil, 0, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Partition(nil, 0, 0) error = %v, want ErrInvalidRange", err)
	}
}

func TestQuickSort_Range(t *testing.T) {
	bids := bidsOf("Z", "D", "C", "B", "A", "Y")
	if err := QuickSort(bids, 1, 4); err != nil {
		t.Fatalf("QuickSort() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Z", "A", "B", "C", "D", "Y"}, titles(bids)); diff != "" {
		t.Errorf("QuickSort() sub range mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickSort_Bounds(t *testing.T) {
	tests := []struct {
		name       string
		titles     []string
		begin, end int
		wantErr    bool
	}{
		{name: "empty", titles: nil, begin: 0, end: -1},
		{name: "single", titles: []string{"X"}, begin: 0, end: 0},
		{name: "begin after end", titles: []string{"B", "A"}, begin: 1, end: 0},
		{name: "end too large", titles: []string{"B", "A"}, begin: 0, end: 2, wantErr: true},
		{name: "negative begin", titles: []string{"B", "A"}, begin: -1, end: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bids := bidsOf(tt.titles...)
			err := QuickSort(bids, tt.begin, tt.end)
			if tt.wantErr != errors.Is(err, ErrInvalidRange) {
				t.Errorf("QuickSort(%d, %d) error = %v, wantErr %v", tt.begin, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestQuickSort_Large(t *testing.T) {
	// patterned, constant, sorted and reversed inputs must not blow the stack
	const n = 200_000
	inputs := map[string]func(i int) string{
		"patterned": func(i int) string { return string(rune('a'+i%26)) + string(rune('a'+i/26%26)) },
		"constant":  func(i int) string { return "same" },
		"sorted":    func(i int) string { return fmt.Sprintf("%08d", i) },
		"reversed":  func(i int) string { return fmt.Sprintf("%08d", n-i) },
	}
	for name, gen := range inputs {
		t.Run(name, func(t *testing.T) {
			bids := make([]Bid, n)
			for i := range bids {
				bids[i] = Bid{Title: gen(i)}
			}
			if err := Sort(bids, Quick); err != nil {
				t.Fatal(err)
			}
			if !IsSorted(bids) {
				t.Error("Sort(Quick) result is not sorted")
			}
		})
	}
}

func TestSort(t *testing.T) {
	for _, algo := range Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			for _, in := range [][]string{nil, {"X"}, {"E", "D", "C", "B", "A"}} {
				bids := bidsOf(in...)
				if err := Sort(bids, algo); err != nil {
					t.Fatalf("Sort(%v) unexpected error: %v", in, err)
				}
				if !IsSorted(bids) {
					t.Errorf("Sort(%v) = %v, not sorted", in, titles(bids))
				}
			}
		})
	}

	if err := Sort(bidsOf("B", "A"), Algorithm(42)); err == nil {
		t.Error("Sort() with an unknown algorithm should fail")
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "selection", want: Selection},
		{in: "quick", want: Quick},
		{in: "quicksort", want: Quick},
		{in: "bubble", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
