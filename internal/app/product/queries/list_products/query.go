package list_products

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/get_product"
)

// SpannerListProductsQuery lists the products owned by one customer.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProductsByOwner(ctx context.Context, customerID string, limit, offset int) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + get_product.ProductColumns + `
		      FROM products
		      WHERE customer_id = @customer_id
		      ORDER BY created_at ASC, product_id ASC
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{
			"customer_id": customerID,
			"limit":       int64(limit),
			"offset":      int64(offset),
		},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("list products of %s: %w", customerID, err)
		}

		p, err := get_product.DecodeProductRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
