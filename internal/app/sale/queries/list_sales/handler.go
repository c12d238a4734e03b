package list_sales

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
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

func (h *Handler) Execute(ctx context.Context, customerID string, limit, offset int) ([]*dto.SaleDTO, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return h.readModel.ListSalesByCustomer(ctx, customerID, limit, offset)
}
