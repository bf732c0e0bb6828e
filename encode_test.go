package bids

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeBids(t *testing.T) {
	bids := []Bid{
		{ID: "97990", Title: "Table", Fund: "General Fund", Amount: USD(27)},
		{ID: "97991", Title: "Chair", Amount: USD(1234.5)},
	}

	var b bytes.Buffer
	if err := EncodeBids(&b, bids); err != nil {
		t.Fatalf("EncodeBids() unexpected error: %v", err)
	}

	want := `{"id":"97990","title":"Table","fund":"General Fund","amount":{"currency":"USD","amount":27}}
{"id":"97991","title":"Chair","fund":"","amount":{"currency":"USD","amount":1234.5}}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeBids() =\n%s\nwant\n%s", got, want)
	}

	decoded, err := DecodeBidsJSONL(&b)
	if err != nil {
		t.Fatalf("DecodeBidsJSONL() unexpected error: %v", err)
	}
	if len(decoded) != len(bids) {
		t.Fatalf("DecodeBidsJSONL() got %d bids, want %d", len(decoded), len(bids))
	}
	for i := range bids {
		if decoded[i].ID != bids[i].ID || decoded[i].Fund != bids[i].Fund || !decoded[i].Amount.Equal(bids[i].Amount) {
			t.Errorf("DecodeBidsJSONL()[%d] = %+v, want %+v", i, decoded[i], bids[i])
		}
	}
}

func TestDecodeBidsJSONL_Error(t *testing.T) {
	if _, err := DecodeBidsJSONL(strings.NewReader("{not json}\n")); err == nil {
		t.Error("DecodeBidsJSONL() expected an error")
	}
}

func TestQueryBids(t *testing.T) {
	bids := []Bid{
		{ID: "1", Title: "Apple", Fund: "General Fund", Amount: USD(10)},
		{ID: "2", Title: "Banana", Fund: "Enterprise", Amount: USD(250)},
		{ID: "3", Title: "Cherry", Fund: "General Fund", Amount: USD(30)},
	}

	tests := []struct {
		path string
		want any
	}{
		{path: "$[0].title", want: "Apple"},
		{path: "$[*].id", want: []any{"1", "2", "3"}},
		{path: `$[?(@.fund == "General Fund")].title`, want: []any{"Apple", "Cherry"}},
		{path: "$[?(@.amount.amount > 20)].id", want: []any{"2", "3"}},
		{path: "$[?(@.amount.amount > 100)].id", want: []any{"2"}},
		{path: "$[?(@.amount.amount <= 30)].title", want: []any{"Apple", "Cherry"}},
		{path: `$[?(@.amount.amount >= 30 && @.fund == "General Fund")].id`, want: []any{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := QueryBids(bids, tt.path)
			if err != nil {
				t.Fatalf("QueryBids(%q) unexpected error: %v", tt.path, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryBids(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
		})
	}

	if _, err := QueryBids(bids, "$[?("); err == nil {
		t.Error("QueryBids() expected an error for an invalid path")
	}
}
