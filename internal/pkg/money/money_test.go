package money

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	m, err := FromString("19.99")
	require.NoError(t, err)
	assert.Equal(t, "19.99", m.String())

	_, err = FromString("nineteen")
	assert.Error(t, err)
}

func TestArithmeticIsExact(t *testing.T) {
	a := MustParse("0.1")
	b := MustParse("0.2")
	assert.True(t, a.Add(b).Equals(MustParse("0.3")))
	assert.True(t, MustParse("150").MultiplyByQuantity(3).Equals(FromInt(450)))
	assert.True(t, MustParse("200").MultiplyBy(decimal.RequireFromString("0.75")).Equals(FromInt(150)))
	assert.True(t, FromInt(5).Subtract(FromInt(7)).IsNegative())
}

func TestRatRoundTrip(t *testing.T) {
	m := MustParse("123.456789")
	back := FromRat(m.Rat())
	assert.True(t, m.Equals(back))

	assert.True(t, FromRat(nil).IsZero())
	assert.True(t, FromRat(big.NewRat(1, 4)).Equals(MustParse("0.25")))
}

func TestRatRoundsToNumericScale(t *testing.T) {
	m := MustParse("1.0000000004")
	assert.Equal(t, "1", m.Rat().RatString())
}

func TestStoredMatchesPersistedValue(t *testing.T) {
	m := MustParse("0.1234567891")
	assert.Equal(t, "0.123456789", m.Stored().Exact())
	assert.True(t, FromRat(m.Rat()).Equals(m.Stored()))
	assert.Equal(t, "33.5", RoundNumeric(decimal.RequireFromString("33.5")).String())
}
