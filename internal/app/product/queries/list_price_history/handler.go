package list_price_history

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, productID string) ([]*dto.PriceHistoryDTO, error) {
	return h.readModel.ListPriceHistory(ctx, productID)
}
