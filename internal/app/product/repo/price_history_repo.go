package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
)

// PriceHistoryRepo builds append-only inserts into price_history.
type PriceHistoryRepo struct{}

func NewPriceHistoryRepo() *PriceHistoryRepo {
	return &PriceHistoryRepo{}
}

func (r *PriceHistoryRepo) InsertMut(e *domain.PriceHistoryEntry) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_price_history.InsertMutation(m_price_history.BuildInsertMap(
		e.ProductID(),
		e.ID(),
		e.Price().Rat(),
		numeric.FromDecimal(e.OfferPercentage()),
		e.RecordedAt().UTC(),
	))
}
