package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_sale"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_sale_line"
)

// SaleRepo is the Spanner implementation of the ledger write side.
// It returns *spanner.Mutation objects but never applies them.
type SaleRepo struct{}

func NewSaleRepo() *SaleRepo {
	return &SaleRepo{}
}

func buildHeaderValues(s *domain.Sale) map[string]interface{} {
	h := s.Header()
	userID := spanner.NullString{}
	if h.UserID != nil {
		userID = spanner.NullString{StringVal: *h.UserID, Valid: true}
	}
	return map[string]interface{}{
		m_sale.ColSaleID:             s.ID(),
		m_sale.ColCustomerID:         s.CustomerID(),
		m_sale.ColUserID:             userID,
		m_sale.ColStoreID:            h.StoreID,
		m_sale.ColTotalAmount:        s.TotalAmount().Rat(),
		m_sale.ColCumulativeDiscount: h.CumulativeDiscount.Rat(),
		m_sale.ColFreightPrice:       h.FreightPrice.Rat(),
		m_sale.ColPaymentType:        h.PaymentType,
		m_sale.ColSaleType:           string(h.SaleType),
		m_sale.ColSaleDate:           s.SaleDate().UTC(),
		m_sale.ColAddress:            h.Address,
		m_sale.ColCreatedAt:          spanner.CommitTimestamp,
	}
}

// InsertMuts returns the header insert first, then the lines in order.
func (r *SaleRepo) InsertMuts(s *domain.Sale) []*spanner.Mutation {
	if s == nil {
		return nil
	}

	muts := make([]*spanner.Mutation, 0, len(s.Lines())+1)
	muts = append(muts, m_sale.InsertMutation(buildHeaderValues(s)))
	for _, l := range s.Lines() {
		muts = append(muts, m_sale_line.InsertMutation(m_sale_line.BuildInsertMap(
			s.ID(),
			l.LineNo(),
			l.ProductID(),
			l.QuantitySold(),
			l.SellingPrice().Rat(),
		)))
	}
	return muts
}
