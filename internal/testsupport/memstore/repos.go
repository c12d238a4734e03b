package memstore

import (
	"cloud.google.com/go/spanner"

	productdomain "github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	productdto "github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	saledomain "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	saledto "github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// ProductRepo stages product inserts and pricing updates.
type ProductRepo struct{ s *Store }

func (s *Store) ProductRepo() *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) InsertMut(p *productdomain.Product) *spanner.Mutation {
	row := productdto.FromProduct(p)
	return r.s.stage(KindProductInsert,
		func() error {
			if _, ok := r.s.products[row.ProductID]; ok {
				return errDuplicateRow("products", row.ProductID)
			}
			return nil
		},
		func() { r.s.products[row.ProductID] = row },
	)
}

func (r *ProductRepo) UpdateMut(p *productdomain.Product) *spanner.Mutation {
	if p == nil || !p.Changes().HasChanges() {
		return nil
	}
	id := p.ID()
	selling, pct, offer, updatedAt := p.SellingPrice(), p.StoredOfferPercentage(), p.OfferPrice(), p.UpdatedAt()
	return r.s.stage(KindProductUpdate,
		func() error {
			if _, ok := r.s.products[id]; !ok {
				return errMissingRow("products", id)
			}
			return nil
		},
		func() {
			stored := r.s.products[id]
			stored.SellingPrice = selling
			stored.OfferPercentage = pct
			stored.OfferPrice = offer
			stored.UpdatedAt = updatedAt
		},
	)
}

// HistoryRepo stages price history appends.
type HistoryRepo struct{ s *Store }

func (s *Store) HistoryRepo() *HistoryRepo {
	return &HistoryRepo{s: s}
}

func (r *HistoryRepo) InsertMut(e *productdomain.PriceHistoryEntry) *spanner.Mutation {
	if e == nil {
		return nil
	}
	row := &productdto.PriceHistoryDTO{
		HistoryID:       e.ID(),
		ProductID:       e.ProductID(),
		Price:           e.Price(),
		OfferPercentage: e.OfferPercentage(),
		RecordedAt:      e.RecordedAt(),
	}
	return r.s.stage(KindHistoryInsert,
		func() error {
			if _, ok := r.s.products[row.ProductID]; !ok {
				return errMissingRow("products", row.ProductID)
			}
			return nil
		},
		func() { r.s.history = append(r.s.history, row) },
	)
}

// CompetitorRepo stages competitor quotes.
type CompetitorRepo struct{ s *Store }

func (s *Store) CompetitorRepo() *CompetitorRepo {
	return &CompetitorRepo{s: s}
}

func (r *CompetitorRepo) InsertMut(c *productdomain.CompetitorPrice) *spanner.Mutation {
	if c == nil {
		return nil
	}
	row := productdto.FromCompetitorPrice(c)
	return r.s.stage(KindCompetitorInsert, nil, func() { r.s.quotes = append(r.s.quotes, row) })
}

// OutboxRepo stages outbox rows for either context.
type OutboxRepo struct{ s *Store }

func (s *Store) OutboxRepo() *OutboxRepo {
	return &OutboxRepo{s: s}
}

func (r *OutboxRepo) InsertMut(e *outbox.Event) *spanner.Mutation {
	if e == nil {
		return nil
	}
	cp := *e
	return r.s.stage(KindOutboxInsert, nil, func() { r.s.events = append(r.s.events, &cp) })
}

// SaleRepo stages a sale header followed by its lines.
type SaleRepo struct{ s *Store }

func (s *Store) SaleRepo() *SaleRepo {
	return &SaleRepo{s: s}
}

func (r *SaleRepo) InsertMuts(sale *saledomain.Sale) []*spanner.Mutation {
	if sale == nil {
		return nil
	}
	full := saledto.FromSale(sale)
	header := *full
	header.Lines = make([]saledto.SaleLineDTO, 0, len(full.Lines))

	muts := []*spanner.Mutation{r.s.stage(KindSaleInsert,
		func() error {
			if _, ok := r.s.saleIndex[header.SaleID]; ok {
				return errDuplicateRow("sales", header.SaleID)
			}
			return nil
		},
		func() {
			row := header
			r.s.sales = append(r.s.sales, &row)
			r.s.saleIndex[row.SaleID] = &row
		},
	)}

	for _, line := range full.Lines {
		l := line
		saleID := header.SaleID
		muts = append(muts, r.s.stage(KindSaleLineInsert, nil, func() {
			parent := r.s.saleIndex[saleID]
			parent.Lines = append(parent.Lines, l)
		}))
	}
	return muts
}
