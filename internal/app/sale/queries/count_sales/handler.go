package count_sales

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/contracts"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, customerID string) (int64, error) {
	return h.readModel.CountSalesByCustomer(ctx, customerID)
}
