package get_product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_product"
	"github.com/murkotick/storefront-ledger-service/internal/models/numeric"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// ProductColumns is the projection every product query selects, in the order
// DecodeProductRow expects.
var ProductColumns = strings.Join(m_product.SelectColumns, ", ")

// SpannerGetProductQuery reads a single product row from Spanner.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct returns domain.ErrProductNotFound when no row matches.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + ProductColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product %s: %w", productID, err)
	}

	return DecodeProductRow(row)
}

// DecodeProductRow scans a row selected with ProductColumns.
func DecodeProductRow(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, customerID, name, category string
		description, batchID           spanner.NullString
		costPrice, sellingPrice        spanner.NullNumeric
		offerPercentage, offerPrice    spanner.NullNumeric
		weight, customerRating         spanner.NullNumeric
		quantity                       spanner.NullInt64
		images                         []spanner.NullString
		expiry, manufactureDate        spanner.NullTime
		createdAt, updatedAt           time.Time
	)

	if err := row.Columns(&id, &customerID, &name, &description,
		&costPrice, &sellingPrice, &offerPercentage, &offerPrice,
		&quantity, &batchID, &category, &weight, &images,
		&customerRating, &expiry, &manufactureDate, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("decode product row: %w", err)
	}

	out := &dto.ProductDTO{
		ProductID:       id,
		CustomerID:      customerID,
		Name:            name,
		Description:     description.StringVal,
		CostPrice:       money.New(numeric.ToDecimal(costPrice)),
		SellingPrice:    money.New(numeric.ToDecimal(sellingPrice)),
		OfferPercentage: numeric.ToDecimalPtr(offerPercentage),
		OfferPrice:      money.New(numeric.ToDecimal(offerPrice)),
		Quantity:        quantity.Int64,
		BatchID:         batchID.StringVal,
		Category:        category,
		Weight:          numeric.ToDecimal(weight),
		Images:          make([]string, 0, len(images)),
		CustomerRating:  numeric.ToDecimalPtr(customerRating),
		Expiry:          numeric.TimePtr(expiry),
		ManufactureDate: numeric.TimePtr(manufactureDate),
		CreatedAt:       createdAt.UTC(),
		UpdatedAt:       updatedAt.UTC(),
	}
	for _, img := range images {
		if img.Valid {
			out.Images = append(out.Images, img.StringVal)
		}
	}

	return out, nil
}
