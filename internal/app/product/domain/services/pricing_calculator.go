package services

import (
	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// PricingCalculator is a domain service that derives offer prices and decides
// whether a price change is worth auditing. It is stateless and satisfies
// domain.Pricer.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// ComputeOfferPrice returns sellingPrice * (100 - offerPercentage) / 100 with
// exact decimal arithmetic. A nil percentage counts as 0.
func (pc *PricingCalculator) ComputeOfferPrice(sellingPrice money.Money, offerPercentage *decimal.Decimal) (money.Money, error) {
	if sellingPrice.IsNegative() {
		return money.Zero(), domain.ErrNegativePrice
	}

	pct := domain.NormalizePercentage(offerPercentage)
	if err := ValidateOfferPercentage(pct); err != nil {
		return money.Zero(), err
	}

	factor := hundred.Sub(pct).Shift(-2)
	return sellingPrice.MultiplyBy(factor), nil
}

// PriceChanged reports whether the selling price or the offer percentage
// differ. Absent percentages compare as 0.
func (pc *PricingCalculator) PriceChanged(prevSelling money.Money, prevPct *decimal.Decimal, newSelling money.Money, newPct *decimal.Decimal) bool {
	if !prevSelling.Equals(newSelling) {
		return true
	}
	return !domain.NormalizePercentage(prevPct).Equal(domain.NormalizePercentage(newPct))
}

// ValidateOfferPercentage rejects percentages outside [0, 100].
func ValidateOfferPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return domain.ErrInvalidOfferPercentage
	}
	return nil
}
