package numeric

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

func TestNumericConversions(t *testing.T) {
	d := decimal.RequireFromString("12.3456789019")
	r := FromDecimal(d)
	assert.Equal(t, "12.345678902", r.FloatString(9))

	n := NullFromDecimal(&d)
	require.True(t, n.Valid)
	assert.True(t, ToDecimal(n).Equal(decimal.RequireFromString("12.345678902")))

	assert.False(t, NullFromDecimal(nil).Valid)
	assert.True(t, ToDecimal(spanner.NullNumeric{}).IsZero())
	assert.Nil(t, ToDecimalPtr(spanner.NullNumeric{}))

	back := ToDecimalPtr(n)
	require.NotNil(t, back)
	assert.True(t, back.Equal(decimal.RequireFromString("12.345678902")))
}

func TestNullTime(t *testing.T) {
	assert.False(t, NullTime(nil).Valid)
	assert.Nil(t, TimePtr(spanner.NullTime{}))

	loc := time.FixedZone("x", 3600)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, loc)
	nt := NullTime(&ts)
	require.True(t, nt.Valid)
	assert.Equal(t, time.UTC, nt.Time.Location())
	assert.True(t, TimePtr(nt).Equal(ts))
}

func TestFromDecimalMatchesMoneyRat(t *testing.T) {
	assert.Equal(t, money.NumericScale, Scale)

	d := decimal.RequireFromString("0.1234567891")
	assert.Equal(t, 0, FromDecimal(d).Cmp(money.New(d).Rat()))
}
