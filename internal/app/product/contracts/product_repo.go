package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// ProductRepo is the write-side repository for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product.
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation for the product's dirty fields, or nil.
	UpdateMut(p *domain.Product) *spanner.Mutation
}

// PriceHistoryRepo appends price history entries.
type PriceHistoryRepo interface {
	InsertMut(e *domain.PriceHistoryEntry) *spanner.Mutation
}

// CompetitorPriceRepo appends competitor quotes.
type CompetitorPriceRepo interface {
	InsertMut(c *domain.CompetitorPrice) *spanner.Mutation
}

// OutboxRepo is the transactional outbox.
type OutboxRepo interface {
	InsertMut(e *outbox.Event) *spanner.Mutation
}
