package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/count_sales"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/list_sales"
)

// SpannerReadModel satisfies contracts.ReadModel for the ledger.
type SpannerReadModel struct {
	listQ  *list_sales.SpannerListSalesQuery
	countQ *count_sales.SpannerCountSalesQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		listQ:  list_sales.NewSpannerListSalesQuery(client),
		countQ: count_sales.NewSpannerCountSalesQuery(client),
	}
}

func (rm *SpannerReadModel) ListSalesByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*dto.SaleDTO, error) {
	return rm.listQ.ListSalesByCustomer(ctx, customerID, limit, offset)
}

func (rm *SpannerReadModel) CountSalesByCustomer(ctx context.Context, customerID string) (int64, error) {
	return rm.countQ.CountSalesByCustomer(ctx, customerID)
}
