package count_sales

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

type SpannerCountSalesQuery struct {
	Client *spanner.Client
}

func NewSpannerCountSalesQuery(client *spanner.Client) *SpannerCountSalesQuery {
	return &SpannerCountSalesQuery{Client: client}
}

func (q *SpannerCountSalesQuery) CountSalesByCustomer(ctx context.Context, customerID string) (int64, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT COUNT(*) FROM sales WHERE customer_id = @customer_id`,
		Params: map[string]interface{}{"customer_id": customerID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("count sales of %s: %w", customerID, err)
	}

	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, fmt.Errorf("decode sale count: %w", err)
	}
	return n, nil
}
