package services

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
)

// Assembler turns untrusted line requests into a sale priced from the
// catalog. It performs no I/O.
type Assembler struct {
	policy OwnerPolicy
}

func NewAssembler(policy OwnerPolicy) *Assembler {
	if policy == nil {
		policy = FirstLineOwner{}
	}
	return &Assembler{policy: policy}
}

func (a *Assembler) Policy() OwnerPolicy {
	return a.policy
}

// Assemble validates lines, checks every product resolved in catalog, prices
// each line at the catalog offer price and attributes the customer.
func (a *Assembler) Assemble(saleID string, lines []domain.LineRequest, header domain.Header, catalog map[string]domain.CatalogEntry, now time.Time) (*domain.Sale, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptySale
	}
	for _, l := range lines {
		if l.QuantitySold <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if header.CumulativeDiscount.IsNegative() || header.FreightPrice.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	if missing := MissingProducts(lines, catalog); len(missing) > 0 {
		return nil, &domain.ReferentialIntegrityError{ProductIDs: missing}
	}

	customerID, err := a.policy.Attribute(lines, catalog)
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.Line, 0, len(lines))
	for i, l := range lines {
		entry := catalog[l.ProductID]
		resolved = append(resolved, domain.NewLine(int64(i+1), l.ProductID, l.QuantitySold, entry.OfferPrice))
	}

	return domain.NewSale(saleID, customerID, header, resolved, now)
}

// DistinctProductIDs returns each referenced product once, in first-seen order.
func DistinctProductIDs(lines []domain.LineRequest) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}

// MissingProducts lists referenced products absent from catalog, each once,
// in request order.
func MissingProducts(lines []domain.LineRequest, catalog map[string]domain.CatalogEntry) []string {
	var missing []string
	for _, id := range DistinctProductIDs(lines) {
		if _, ok := catalog[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
