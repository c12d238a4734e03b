package list_price_history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// SpannerListPriceHistoryQuery reads the audit trail of one product, oldest first.
type SpannerListPriceHistoryQuery struct {
	Client *spanner.Client
}

func NewSpannerListPriceHistoryQuery(client *spanner.Client) *SpannerListPriceHistoryQuery {
	return &SpannerListPriceHistoryQuery{Client: client}
}

func (q *SpannerListPriceHistoryQuery) ListPriceHistory(ctx context.Context, productID string) ([]*dto.PriceHistoryDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT history_id, product_id, price, offer_percentage, recorded_at
		      FROM price_history
		      WHERE product_id = @id
		      ORDER BY recorded_at ASC, history_id ASC`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.PriceHistoryDTO, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("list price history of %s: %w", productID, err)
		}

		var (
			historyID, pid string
			price, pct     spanner.NullNumeric
			recordedAt     time.Time
		)
		if err := row.Columns(&historyID, &pid, &price, &pct, &recordedAt); err != nil {
			return nil, fmt.Errorf("decode price history row: %w", err)
		}

		out = append(out, &dto.PriceHistoryDTO{
			HistoryID:       historyID,
			ProductID:       pid,
			Price:           money.New(numeric.ToDecimal(price)),
			OfferPercentage: numeric.ToDecimal(pct),
			RecordedAt:      recordedAt.UTC(),
		})
	}
}
