package contracts

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
)

// ReadModel serves product reads. GetProduct returns domain.ErrProductNotFound
// when no row matches.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProductsByOwner(ctx context.Context, customerID string, limit, offset int) ([]*dto.ProductDTO, error)
	ListPriceHistory(ctx context.Context, productID string) ([]*dto.PriceHistoryDTO, error)
}
