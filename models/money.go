package models

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount in a single currency. The amount is kept as an
// arbitrary-precision decimal in major units; the currency code follows
// ISO 4217.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money from a major-unit decimal amount and a currency code.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// MoneyFromFloat builds a Money from a float major-unit amount. Intended for
// literals in tests and seed data; real records should come in over the wire.
func MoneyFromFloat(amount float64, currency string) Money {
	return Money{amount: decimal.NewFromFloat(amount), currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }
func (m Money) IsNegative() bool        { return m.amount.IsNegative() }
func (m Money) Neg() Money              { return Money{amount: m.amount.Neg(), currency: m.currency} }

// Add sums two amounts. An empty currency is weak: it adopts the other side's
// currency, so zero values compose without special cases.
func (m Money) Add(n Money) Money {
	return Money{amount: m.amount.Add(n.amount), currency: pickCurrency(m, n)}
}

func (m Money) Sub(n Money) Money {
	return Money{amount: m.amount.Sub(n.amount), currency: pickCurrency(m, n)}
}

// Div divides the amount by an integer divisor, e.g. for an even expense split.
func (m Money) Div(parts int64) Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(parts)), currency: m.currency}
}

func (m Money) Equal(n Money) bool {
	return m.amount.Equal(n.amount) && m.currency == n.currency
}

// String formats the amount with the currency's display rules.
func (m Money) String() string {
	cur := money.New(0, m.currency).Currency()
	minor := m.amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func pickCurrency(a, b Money) string {
	if a.currency == "" {
		return b.currency
	}
	return a.currency
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON encodes the amount as a decimal string to keep precision stable
// across the wire and the local state file.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.String(), Currency: m.currency})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}

	amount, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("decode money amount %q: %w", raw.Amount, err)
	}

	m.amount = amount
	m.currency = raw.Currency
	return nil
}
