package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// CatalogReader resolves authoritative pricing for a set of products in one
// round trip. Unknown ids are simply absent from the result.
type CatalogReader interface {
	GetPricingByIDs(ctx context.Context, productIDs []string) (map[string]domain.CatalogEntry, error)
}

// SaleRepo returns the header insert followed by one insert per line.
type SaleRepo interface {
	InsertMuts(s *domain.Sale) []*spanner.Mutation
}

type OutboxRepo interface {
	InsertMut(e *outbox.Event) *spanner.Mutation
}

type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}

// ReadModel serves sale reads scoped to one customer.
type ReadModel interface {
	ListSalesByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*dto.SaleDTO, error)
	CountSalesByCustomer(ctx context.Context, customerID string) (int64, error)
}
