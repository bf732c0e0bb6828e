package bids

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of amounts read from the sales export.
const DefaultCurrency = money.USD

// Money represents a monetary value.
// Its zero value is a zero amount without currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a money value from a numeric constant.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	var d decimal.Decimal
	switch v := any(value).(type) {
	case decimal.Decimal:
		d = v
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	}
	return Money{value: d, cur: currency}
}

// USD is a convenient factory for amounts in the default currency.
func USD(v float64) Money { return M(v, DefaultCurrency) }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, using the
// currency's own template (e.g. "$1,234.50").
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", m.cur)
	rounded := m.value
	if m.cur != "" {
		rounded = m.value.Round(int32(m.currency().Fraction))
	}
	w.Append("amount", rounded)
	return w.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var jm struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &jm); err != nil {
		return fmt.Errorf("invalid money %s: %w", string(data), err)
	}
	*m = Money{value: jm.Amount, cur: jm.Currency}
	return nil
}
