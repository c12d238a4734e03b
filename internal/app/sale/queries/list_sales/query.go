package list_sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// SpannerListSalesQuery reads a page of sale headers and then their lines.
// Both reads share one read-only snapshot.
type SpannerListSalesQuery struct {
	Client *spanner.Client
}

func NewSpannerListSalesQuery(client *spanner.Client) *SpannerListSalesQuery {
	return &SpannerListSalesQuery{Client: client}
}

func (q *SpannerListSalesQuery) ListSalesByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*dto.SaleDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	sales, err := q.headers(ctx, tx, customerID, limit, offset)
	if err != nil || len(sales) == 0 {
		return sales, err
	}

	ids := make([]string, 0, len(sales))
	byID := make(map[string]*dto.SaleDTO, len(sales))
	for _, s := range sales {
		ids = append(ids, s.SaleID)
		byID[s.SaleID] = s
	}

	if err := q.lines(ctx, tx, ids, byID); err != nil {
		return nil, err
	}
	return sales, nil
}

func (q *SpannerListSalesQuery) headers(ctx context.Context, tx *spanner.ReadOnlyTransaction, customerID string, limit, offset int) ([]*dto.SaleDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT sale_id, customer_id, user_id, store_id, total_amount, cumulative_discount,
		             freight_price, payment_type, sale_type, sale_date, address
		      FROM sales
		      WHERE customer_id = @customer_id
		      ORDER BY sale_date DESC, sale_id ASC
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{
			"customer_id": customerID,
			"limit":       int64(limit),
			"offset":      int64(offset),
		},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.SaleDTO, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("list sales of %s: %w", customerID, err)
		}

		var (
			saleID, cust, storeID, paymentType, saleType string
			userID, address                              spanner.NullString
			total, discount, freight                     spanner.NullNumeric
			saleDate                                     time.Time
		)
		if err := row.Columns(&saleID, &cust, &userID, &storeID, &total, &discount,
			&freight, &paymentType, &saleType, &saleDate, &address); err != nil {
			return nil, fmt.Errorf("decode sale row: %w", err)
		}

		s := &dto.SaleDTO{
			SaleID:             saleID,
			CustomerID:         cust,
			StoreID:            storeID,
			TotalAmount:        money.New(numeric.ToDecimal(total)),
			CumulativeDiscount: money.New(numeric.ToDecimal(discount)),
			FreightPrice:       money.New(numeric.ToDecimal(freight)),
			PaymentType:        paymentType,
			SaleType:           saleType,
			SaleDate:           saleDate.UTC(),
			Address:            address.StringVal,
			Lines:              make([]dto.SaleLineDTO, 0),
		}
		if userID.Valid {
			u := userID.StringVal
			s.UserID = &u
		}
		out = append(out, s)
	}
}

func (q *SpannerListSalesQuery) lines(ctx context.Context, tx *spanner.ReadOnlyTransaction, saleIDs []string, byID map[string]*dto.SaleDTO) error {
	stmt := spanner.Statement{
		SQL: `SELECT sale_id, line_no, product_id, quantity_sold, selling_price
		      FROM sale_lines
		      WHERE sale_id IN UNNEST(@ids)
		      ORDER BY sale_id, line_no`,
		Params: map[string]interface{}{"ids": saleIDs},
	}

	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("list sale lines: %w", err)
		}

		var (
			saleID, productID string
			lineNo, qty       int64
			price             spanner.NullNumeric
		)
		if err := row.Columns(&saleID, &lineNo, &productID, &qty, &price); err != nil {
			return fmt.Errorf("decode sale line row: %w", err)
		}

		if s, ok := byID[saleID]; ok {
			s.Lines = append(s.Lines, dto.SaleLineDTO{
				LineNo:       lineNo,
				ProductID:    productID,
				QuantitySold: qty,
				SellingPrice: money.New(numeric.ToDecimal(price)),
			})
		}
	}
}
