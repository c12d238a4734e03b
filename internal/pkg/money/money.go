package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// NumericScale is the number of fractional digits a Spanner NUMERIC column keeps.
const NumericScale = 9

// Money represents a monetary value with exact decimal arithmetic.
// Money is immutable - all operations return new values.
type Money struct {
	amount decimal.Decimal
}

// New wraps a decimal amount.
func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

// FromString parses a decimal string such as "19.99".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustParse is FromString for constants and tests.
func MustParse(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt builds a whole-unit amount.
func FromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// FromRat converts a NUMERIC value read from Spanner.
func FromRat(r *big.Rat) Money {
	if r == nil {
		return Zero()
	}
	return Money{amount: decimal.NewFromBigRat(r, NumericScale)}
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyBy scales the amount by an arbitrary decimal factor.
func (m Money) MultiplyBy(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MultiplyByQuantity returns the line amount for qty units.
func (m Money) MultiplyByQuantity(qty int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(qty))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Decimal exposes the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Stored returns the amount rounded to NUMERIC scale, the value a read
// after persisting it would return.
func (m Money) Stored() Money {
	return Money{amount: RoundNumeric(m.amount)}
}

// Rat returns the amount rounded to NUMERIC scale, ready to be written to Spanner.
func (m Money) Rat() *big.Rat {
	return RoundNumeric(m.amount).Rat()
}

// RoundNumeric rounds d to NumericScale fractional digits.
func RoundNumeric(d decimal.Decimal) decimal.Decimal {
	return d.Round(NumericScale)
}

// String returns the amount with two fractional digits, e.g. "150.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Exact returns the amount without padding or truncation.
func (m Money) Exact() string {
	return m.amount.String()
}
