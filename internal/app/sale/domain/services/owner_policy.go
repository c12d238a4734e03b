package services

import (
	"fmt"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
)

// OwnerPolicy decides which customer a sale is attributed to. Lines are
// resolved and non-empty when Attribute is called.
type OwnerPolicy interface {
	Name() string
	Attribute(lines []domain.LineRequest, catalog map[string]domain.CatalogEntry) (string, error)
}

const (
	PolicyFirstLine   = "first_line"
	PolicySingleOwner = "single_owner"
)

// FirstLineOwner attributes the sale to the owner of the first line's
// product, whatever the other lines reference.
type FirstLineOwner struct{}

func (FirstLineOwner) Name() string {
	return PolicyFirstLine
}

func (FirstLineOwner) Attribute(lines []domain.LineRequest, catalog map[string]domain.CatalogEntry) (string, error) {
	return catalog[lines[0].ProductID].CustomerID, nil
}

// SingleOwnerOnly rejects sales spanning products of different owners.
type SingleOwnerOnly struct{}

func (SingleOwnerOnly) Name() string {
	return PolicySingleOwner
}

func (SingleOwnerOnly) Attribute(lines []domain.LineRequest, catalog map[string]domain.CatalogEntry) (string, error) {
	owner := catalog[lines[0].ProductID].CustomerID
	for _, l := range lines[1:] {
		if catalog[l.ProductID].CustomerID != owner {
			return "", domain.ErrMixedOwners
		}
	}
	return owner, nil
}

// PolicyByName maps a configuration value to a policy.
func PolicyByName(name string) (OwnerPolicy, error) {
	switch name {
	case "", PolicyFirstLine:
		return FirstLineOwner{}, nil
	case PolicySingleOwner:
		return SingleOwnerOnly{}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOwnerPolicy, name)
}
