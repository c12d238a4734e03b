package storefront

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	productdto "github.com/murkotick/storefront-ledger-service/internal/app/product/dto"
	saledto "github.com/murkotick/storefront-ledger-service/internal/app/sale/dto"
)

// decodeRequest fills an application request from a struct message. Money
// and percentages accept JSON numbers or decimal strings; send strings when
// the value must not pass through a float64. Absent or null optional values
// stay nil.
func decodeRequest(in *structpb.Struct, out any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("malformed request: %w", err)
	}
	return nil
}

func stringField(in *structpb.Struct, key string) string {
	if in == nil {
		return ""
	}
	v, ok := in.GetFields()[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func intField(in *structpb.Struct, key string) int {
	if in == nil {
		return 0
	}
	v, ok := in.GetFields()[key]
	if !ok {
		return 0
	}
	return int(v.GetNumberValue())
}

func decimalPtr(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func timePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func timestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func anySlice(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}

func productToMap(p *productdto.ProductDTO) map[string]any {
	return map[string]any{
		"productId":       p.ProductID,
		"customerId":      p.CustomerID,
		"productName":     p.Name,
		"description":     p.Description,
		"costPrice":       p.CostPrice.Exact(),
		"sellingPrice":    p.SellingPrice.Exact(),
		"offerPercentage": decimalPtr(p.OfferPercentage),
		"offerPrice":      p.OfferPrice.Exact(),
		"quantity":        p.Quantity,
		"batchId":         p.BatchID,
		"categoryName":    p.Category,
		"weight":          p.Weight.String(),
		"images":          anySlice(p.Images),
		"customerRating":  decimalPtr(p.CustomerRating),
		"expiry":          timePtr(p.Expiry),
		"manufactureDate": timePtr(p.ManufactureDate),
		"createdAt":       timestamp(p.CreatedAt),
		"updatedAt":       timestamp(p.UpdatedAt),
	}
}

func historyToMap(h *productdto.PriceHistoryDTO) map[string]any {
	return map[string]any{
		"historyId":       h.HistoryID,
		"productId":       h.ProductID,
		"price":           h.Price.Exact(),
		"offerPercentage": h.OfferPercentage.String(),
		"recordedAt":      timestamp(h.RecordedAt),
	}
}

func competitorPriceToMap(c *productdto.CompetitorPriceDTO) map[string]any {
	return map[string]any{
		"competitorPriceId": c.CompetitorPriceID,
		"productId":         c.ProductID,
		"companyName":       c.CompanyName,
		"price":             c.Price.Exact(),
		"freight":           c.Freight.Exact(),
		"customerRating":    decimalPtr(c.CustomerRating),
		"createdAt":         timestamp(c.CreatedAt),
	}
}

func saleToMap(s *saledto.SaleDTO) map[string]any {
	lines := make([]any, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, map[string]any{
			"lineNo":       l.LineNo,
			"productId":    l.ProductID,
			"quantitySold": l.QuantitySold,
			"sellingPrice": l.SellingPrice.Exact(),
		})
	}
	var userID any
	if s.UserID != nil {
		userID = *s.UserID
	}
	return map[string]any{
		"saleId":             s.SaleID,
		"customerId":         s.CustomerID,
		"userId":             userID,
		"storeId":            s.StoreID,
		"totalAmount":        s.TotalAmount.Exact(),
		"cumulativeDiscount": s.CumulativeDiscount.Exact(),
		"freightPrice":       s.FreightPrice.Exact(),
		"paymentType":        s.PaymentType,
		"saleType":           s.SaleType,
		"saleDate":           timestamp(s.SaleDate),
		"address":            s.Address,
		"salesDetails":       lines,
	}
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	return out, nil
}
