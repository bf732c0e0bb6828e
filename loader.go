package bids

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Columns of the monthly sales export used to build a Bid.
const (
	titleColumn  = 0
	idColumn     = 1
	amountColumn = 4
	fundColumn   = 8
)

// LoadBids opens and decodes a CSV file of bids.
func LoadBids(path string) ([]Bid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open bids file %q: %w", path, err)
	}
	defer f.Close()

	bids, err := DecodeBids(f)
	if err != nil {
		return bids, fmt.Errorf("could not decode bids file %q: %w", path, err)
	}
	return bids, nil
}

// DecodeBids reads bids from a CSV stream whose first row is a header.
//
// Rows that are too short to hold a bid are reported in the returned error,
// joined together, while the bids from the other rows are still returned.
func DecodeBids(r io.Reader) ([]Bid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	// header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var bids []Bid
	var errs error
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return bids, errors.Join(errs, fmt.Errorf("failed to read csv: %w", err))
		}
		line, _ := reader.FieldPos(0)
		if len(row) <= fundColumn {
			errs = errors.Join(errs, fmt.Errorf("line %d: expected at least %d columns, got %d", line, fundColumn+1, len(row)))
			continue
		}

		bid := NewBid(row[idColumn], row[titleColumn], row[fundColumn])
		amount, err := ParseAmount(row[amountColumn])
		if err != nil {
			log.Printf("line %d: %v, using a zero amount instead", line, err)
			amount = M(0, DefaultCurrency)
		}
		bid.Amount = amount
		bids = append(bids, bid)
	}
	return bids, errs
}

// ParseAmount parses an amount like "$1,234.56" in the default currency.
// An empty string is a zero amount.
func ParseAmount(s string) (Money, error) {
	clean := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	if clean == "" {
		return M(0, DefaultCurrency), nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(d, DefaultCurrency), nil
}
