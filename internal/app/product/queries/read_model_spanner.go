package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/get_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ     *get_product.SpannerGetProductQuery
	listQ    *list_products.SpannerListProductsQuery
	historyQ *list_price_history.SpannerListPriceHistoryQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:     get_product.NewSpannerGetProductQuery(client),
		listQ:    list_products.NewSpannerListProductsQuery(client),
		historyQ: list_price_history.NewSpannerListPriceHistoryQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProductsByOwner(ctx context.Context, customerID string, limit, offset int) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProductsByOwner(ctx, customerID, limit, offset)
}

func (rm *SpannerReadModel) ListPriceHistory(ctx context.Context, productID string) ([]*dto.PriceHistoryDTO, error) {
	return rm.historyQ.ListPriceHistory(ctx, productID)
}
