package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// ProductDTO contains the full product row returned by read queries.
// OfferPercentage is nil when the stored column is NULL.
type ProductDTO struct {
	ProductID       string
	CustomerID      string
	Name            string
	Description     string
	CostPrice       money.Money
	SellingPrice    money.Money
	OfferPercentage *decimal.Decimal
	OfferPrice      money.Money
	Quantity        int64
	BatchID         string
	Category        string
	Weight          decimal.Decimal
	Images          []string
	CustomerRating  *decimal.Decimal
	Expiry          *time.Time
	ManufactureDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PriceHistoryDTO is one audit entry, oldest first in list results.
type PriceHistoryDTO struct {
	HistoryID       string
	ProductID       string
	Price           money.Money
	OfferPercentage decimal.Decimal
	RecordedAt      time.Time
}

// CompetitorPriceDTO is returned after a competitor quote is stored.
type CompetitorPriceDTO struct {
	CompetitorPriceID string
	ProductID         string
	CompanyName       string
	Price             money.Money
	Freight           money.Money
	CustomerRating    *decimal.Decimal
	CreatedAt         time.Time
}
