package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_competitor_price"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
)

type CompetitorPriceRepo struct{}

func NewCompetitorPriceRepo() *CompetitorPriceRepo {
	return &CompetitorPriceRepo{}
}

func (r *CompetitorPriceRepo) InsertMut(c *domain.CompetitorPrice) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_competitor_price.InsertMutation(m_competitor_price.BuildInsertMap(
		c.ID(),
		c.ProductID(),
		c.CompanyName(),
		c.Price().Rat(),
		c.Freight().Rat(),
		numeric.NullFromDecimal(c.CustomerRating()),
		c.CreatedAt().UTC(),
	))
}
