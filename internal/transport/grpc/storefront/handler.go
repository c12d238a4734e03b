package storefront

import (
	"context"
	"errors"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/get_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_products"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_competitor_price"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/count_sales"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/list_sales"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/usecases/create_sale"
)

var (
	errProductIDRequired  = errors.New("productId is required")
	errCustomerIDRequired = errors.New("customerId is required")
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	CreateProduct         *create_product.Interactor
	UpdateProduct         *update_product.Interactor
	CreateCompetitorPrice *create_competitor_price.Interactor
	CreatePriceHistory    *create_price_history.Interactor
	CreateSale            *create_sale.Interactor
}

// Queries groups read handlers.
type Queries struct {
	GetProduct       *get_product.Handler
	ListProducts     *list_products.Handler
	ListPriceHistory *list_price_history.Handler
	ListSales        *list_sales.Handler
	CountSales       *count_sales.Handler
}

// Handler is a thin gRPC transport adapter.
// It decodes struct messages into application requests and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
}

var _ StorefrontServer = (*Handler)(nil)

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

func (h *Handler) CreateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req create_product.Request
	if err := decodeRequest(in, &req); err != nil {
		return nil, invalidArgument(err)
	}

	out, err := h.commands.CreateProduct.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"product": productToMap(out)})
}

// UpdateProduct replies {"found": false, "product": null} for an unknown
// product instead of failing.
func (h *Handler) UpdateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req update_product.Request
	if err := decodeRequest(in, &req); err != nil {
		return nil, invalidArgument(err)
	}

	out, err := h.commands.UpdateProduct.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	if out == nil {
		return toStruct(map[string]any{"found": false, "product": nil})
	}
	return toStruct(map[string]any{"found": true, "product": productToMap(out)})
}

func (h *Handler) GetProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	productID := stringField(in, "productId")
	if productID == "" {
		return nil, invalidArgument(errProductIDRequired)
	}

	out, err := h.queries.GetProduct.Execute(ctx, productID)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"product": productToMap(out)})
}

func (h *Handler) ListProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	customerID := stringField(in, "customerId")
	if customerID == "" {
		return nil, invalidArgument(errCustomerIDRequired)
	}
	limit := clampPageSize(intField(in, "pageSize"), list_products.DefaultPageSize, list_products.MaxPageSize)
	offset, err := decodePageToken(stringField(in, "pageToken"))
	if err != nil {
		return nil, invalidArgument(err)
	}

	items, err := h.queries.ListProducts.Execute(ctx, customerID, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	products := make([]any, 0, len(items))
	for _, p := range items {
		products = append(products, productToMap(p))
	}
	return toStruct(map[string]any{
		"products":      products,
		"nextPageToken": nextPageToken(offset, limit, len(items)),
	})
}

func (h *Handler) CreateCompetitorPrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req create_competitor_price.Request
	if err := decodeRequest(in, &req); err != nil {
		return nil, invalidArgument(err)
	}

	out, err := h.commands.CreateCompetitorPrice.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"competitorPrice": competitorPriceToMap(out)})
}

func (h *Handler) CreatePriceHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req create_price_history.Request
	if err := decodeRequest(in, &req); err != nil {
		return nil, invalidArgument(err)
	}

	out, err := h.commands.CreatePriceHistory.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"priceHistory": historyToMap(out)})
}

func (h *Handler) ListPriceHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	productID := stringField(in, "productId")
	if productID == "" {
		return nil, invalidArgument(errProductIDRequired)
	}

	items, err := h.queries.ListPriceHistory.Execute(ctx, productID)
	if err != nil {
		return nil, mapError(err)
	}

	entries := make([]any, 0, len(items))
	for _, e := range items {
		entries = append(entries, historyToMap(e))
	}
	return toStruct(map[string]any{"entries": entries})
}

func (h *Handler) CreateSale(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req create_sale.Request
	if err := decodeRequest(in, &req); err != nil {
		return nil, invalidArgument(err)
	}

	out, err := h.commands.CreateSale.Execute(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"sale": saleToMap(out)})
}

func (h *Handler) ListSales(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	customerID := stringField(in, "customerId")
	if customerID == "" {
		return nil, invalidArgument(errCustomerIDRequired)
	}
	limit := clampPageSize(intField(in, "pageSize"), list_sales.DefaultPageSize, list_sales.MaxPageSize)
	offset, err := decodePageToken(stringField(in, "pageToken"))
	if err != nil {
		return nil, invalidArgument(err)
	}

	items, err := h.queries.ListSales.Execute(ctx, customerID, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	sales := make([]any, 0, len(items))
	for _, s := range items {
		sales = append(sales, saleToMap(s))
	}
	return toStruct(map[string]any{
		"sales":         sales,
		"nextPageToken": nextPageToken(offset, limit, len(items)),
	})
}

func (h *Handler) CountSales(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	customerID := stringField(in, "customerId")
	if customerID == "" {
		return nil, invalidArgument(errCustomerIDRequired)
	}

	n, err := h.queries.CountSales.Execute(ctx, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	return toStruct(map[string]any{"customerId": customerID, "count": n})
}
