package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_product"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues is unexported so tests in this package can inspect the
// column map without relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	return map[string]interface{}{
		m_product.ColProductID:       p.ID(),
		m_product.ColCustomerID:      p.CustomerID(),
		m_product.ColName:            p.Name(),
		m_product.ColDescription:     p.Description(),
		m_product.ColCostPrice:       p.CostPrice().Rat(),
		m_product.ColSellingPrice:    p.SellingPrice().Rat(),
		m_product.ColOfferPercentage: numeric.NullFromDecimal(p.StoredOfferPercentage()),
		m_product.ColOfferPrice:      p.OfferPrice().Rat(),
		m_product.ColQuantity:        p.Quantity(),
		m_product.ColBatchID:         p.BatchID(),
		m_product.ColCategory:        p.Category(),
		m_product.ColWeight:          numeric.FromDecimal(p.Weight()),
		m_product.ColImages:          p.Images(),
		m_product.ColCustomerRating:  numeric.NullFromDecimal(p.CustomerRating()),
		m_product.ColExpiry:          numeric.NullTime(p.Expiry()),
		m_product.ColManufactureDate: numeric.NullTime(p.ManufactureDate()),
		m_product.ColCreatedAt:       p.CreatedAt().UTC(),
		m_product.ColUpdatedAt:       p.UpdatedAt().UTC(),
	}
}

// buildUpdateValues maps dirty fields to columns. updated_at is stamped
// whenever anything changed.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}
	if p.Changes().Dirty(domain.FieldSellingPrice) {
		updates[m_product.ColSellingPrice] = p.SellingPrice().Rat()
	}
	if p.Changes().Dirty(domain.FieldOfferPercentage) {
		updates[m_product.ColOfferPercentage] = numeric.NullFromDecimal(p.StoredOfferPercentage())
	}
	if p.Changes().Dirty(domain.FieldOfferPrice) {
		updates[m_product.ColOfferPrice] = p.OfferPrice().Rat()
	}
	if len(updates) == 0 {
		return nil
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return updates
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	updates := buildUpdateValues(p)
	if updates == nil {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), updates)
}
