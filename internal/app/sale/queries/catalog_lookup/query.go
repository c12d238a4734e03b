package catalog_lookup

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// SpannerCatalogLookup projects the pricing fields of a product set. It
// satisfies contracts.CatalogReader.
type SpannerCatalogLookup struct {
	Client *spanner.Client
}

func NewSpannerCatalogLookup(client *spanner.Client) *SpannerCatalogLookup {
	return &SpannerCatalogLookup{Client: client}
}

func (q *SpannerCatalogLookup) GetPricingByIDs(ctx context.Context, productIDs []string) (map[string]domain.CatalogEntry, error) {
	out := make(map[string]domain.CatalogEntry, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	stmt := spanner.Statement{
		SQL: `SELECT product_id, offer_price, customer_id
		      FROM products
		      WHERE product_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": productIDs},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("catalog lookup: %w", err)
		}

		var (
			id, customerID string
			offerPrice     spanner.NullNumeric
		)
		if err := row.Columns(&id, &offerPrice, &customerID); err != nil {
			return nil, fmt.Errorf("decode catalog row: %w", err)
		}
		out[id] = domain.CatalogEntry{
			ProductID:  id,
			OfferPrice: money.New(numeric.ToDecimal(offerPrice)),
			CustomerID: customerID,
		}
	}
}
