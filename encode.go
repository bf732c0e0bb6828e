package bids

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// EncodeBids writes bids to w in JSONL format, one bid per line, in their
// current order.
func EncodeBids(w io.Writer, bids []Bid) error {
	decimal.MarshalJSONWithoutQuotes = true
	for i, b := range bids {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal bid #%d %q: %w", i, b.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write bid #%d %q: %w", i, b.ID, err)
		}
	}
	return nil
}

// DecodeBidsJSONL reads bids written by EncodeBids.
func DecodeBidsJSONL(r io.Reader) ([]Bid, error) {
	var bids []Bid
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var b Bid
		if err := json.Unmarshal(line, &b); err != nil {
			return nil, fmt.Errorf("could not decode bid in line %q: %w", string(line), err)
		}
		bids = append(bids, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bids: %w", err)
	}
	return bids, nil
}

// QueryBids evaluates a JSONPath expression over the JSON form of bids,
// that is an array of objects with "id", "title", "fund" and "amount" keys.
//
//	$[0:3].title
//	$[?(@.fund == "General Fund")].id
func QueryBids(bids []Bid, path string) (any, error) {
	decimal.MarshalJSONWithoutQuotes = true
	if bids == nil {
		bids = []Bid{}
	}
	data, err := json.Marshal(bids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bids: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bids: %w", err)
	}
	// the full language is needed for comparisons in filters.
	eval, err := gval.Full(jsonpath.PlaceholderExtension()).NewEvaluable(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	jval, err := eval(context.Background(), jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
