package list_products

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute clamps the page size to (0, MaxPageSize]; zero means DefaultPageSize.
func (h *Handler) Execute(ctx context.Context, customerID string, limit, offset int) ([]*dto.ProductDTO, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return h.readModel.ListProductsByOwner(ctx, customerID, limit, offset)
}
