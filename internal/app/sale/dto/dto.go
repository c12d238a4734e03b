package dto

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

type SaleDTO struct {
	SaleID             string
	CustomerID         string
	UserID             *string
	StoreID            string
	TotalAmount        money.Money
	CumulativeDiscount money.Money
	FreightPrice       money.Money
	PaymentType        string
	SaleType           string
	SaleDate           time.Time
	Address            string
	Lines              []SaleLineDTO
}

type SaleLineDTO struct {
	LineNo       int64
	ProductID    string
	QuantitySold int64
	SellingPrice money.Money
}

// FromSale snapshots a sale for responses.
func FromSale(s *domain.Sale) *SaleDTO {
	h := s.Header()
	out := &SaleDTO{
		SaleID:             s.ID(),
		CustomerID:         s.CustomerID(),
		UserID:             h.UserID,
		StoreID:            h.StoreID,
		TotalAmount:        s.TotalAmount(),
		CumulativeDiscount: h.CumulativeDiscount,
		FreightPrice:       h.FreightPrice,
		PaymentType:        h.PaymentType,
		SaleType:           string(h.SaleType),
		SaleDate:           s.SaleDate(),
		Address:            h.Address,
		Lines:              make([]SaleLineDTO, 0, len(s.Lines())),
	}
	for _, l := range s.Lines() {
		out.Lines = append(out.Lines, SaleLineDTO{
			LineNo:       l.LineNo(),
			ProductID:    l.ProductID(),
			QuantitySold: l.QuantitySold(),
			SellingPrice: l.SellingPrice(),
		})
	}
	return out
}
