// Package numeric converts between decimal values and Spanner NUMERIC columns.
package numeric

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// Scale is the number of fractional digits a NUMERIC column keeps.
const Scale = money.NumericScale

// FromDecimal rounds d to NUMERIC scale.
func FromDecimal(d decimal.Decimal) *big.Rat {
	return money.New(d).Rat()
}

// NullFromDecimal maps nil to SQL NULL.
func NullFromDecimal(d *decimal.Decimal) spanner.NullNumeric {
	if d == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *FromDecimal(*d), Valid: true}
}

// ToDecimal reads a NUMERIC column; NULL reads as zero.
func ToDecimal(n spanner.NullNumeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return decimal.NewFromBigRat(&n.Numeric, Scale)
}

// ToDecimalPtr reads a nullable NUMERIC column; NULL reads as nil.
func ToDecimalPtr(n spanner.NullNumeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := decimal.NewFromBigRat(&n.Numeric, Scale)
	return &d
}

// NullTime maps nil to SQL NULL and normalises to UTC.
func NullTime(t *time.Time) spanner.NullTime {
	if t == nil {
		return spanner.NullTime{}
	}
	return spanner.NullTime{Time: t.UTC(), Valid: true}
}

// TimePtr reads a nullable TIMESTAMP column.
func TimePtr(t spanner.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
