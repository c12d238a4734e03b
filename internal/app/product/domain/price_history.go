package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// PriceHistoryEntry is an immutable snapshot of the pricing a product had
// before a change. Entries are only ever appended.
type PriceHistoryEntry struct {
	id              string
	productID       string
	price           money.Money
	offerPercentage decimal.Decimal
	recordedAt      time.Time
}

// NewPriceHistoryEntry builds an entry; a nil percentage is stored as 0.
func NewPriceHistoryEntry(id, productID string, price money.Money, offerPercentage *decimal.Decimal, recordedAt time.Time) *PriceHistoryEntry {
	return &PriceHistoryEntry{
		id:              id,
		productID:       productID,
		price:           price,
		offerPercentage: NormalizePercentage(offerPercentage),
		recordedAt:      recordedAt,
	}
}

func (e *PriceHistoryEntry) ID() string {
	return e.id
}

func (e *PriceHistoryEntry) ProductID() string {
	return e.productID
}

func (e *PriceHistoryEntry) Price() money.Money {
	return e.price
}

func (e *PriceHistoryEntry) OfferPercentage() decimal.Decimal {
	return e.offerPercentage
}

func (e *PriceHistoryEntry) RecordedAt() time.Time {
	return e.recordedAt
}

