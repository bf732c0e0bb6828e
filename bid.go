package bids

import (
	"encoding/json"
	"fmt"
)

// Bid is a single record of the monthly sales export.
//
// Only the Title takes part in sorting, other fields are carried along with
// the record when it is moved.
type Bid struct {
	ID     string // unique identifier
	Title  string
	Fund   string
	Amount Money
}

// NewBid returns a bid with a zero amount.
func NewBid(id, title, fund string) Bid {
	return Bid{ID: id, Title: title, Fund: fund}
}

// MarshalJSON writes the bid with a stable key order.
func (b Bid) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("title", b.Title)
	w.Append("fund", b.Fund)
	w.Append("amount", b.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a bid written by MarshalJSON.
func (b *Bid) UnmarshalJSON(data []byte) error {
	var jb struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Fund   string `json:"fund"`
		Amount Money  `json:"amount"`
	}
	if err := json.Unmarshal(data, &jb); err != nil {
		return fmt.Errorf("invalid bid %s: %w", string(data), err)
	}
	*b = Bid{ID: jb.ID, Title: jb.Title, Fund: jb.Fund, Amount: jb.Amount}
	return nil
}
