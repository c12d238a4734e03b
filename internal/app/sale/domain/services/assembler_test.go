package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

var now = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func catalogOf(entries ...domain.CatalogEntry) map[string]domain.CatalogEntry {
	m := make(map[string]domain.CatalogEntry, len(entries))
	for _, e := range entries {
		m[e.ProductID] = e
	}
	return m
}

func header() domain.Header {
	return domain.Header{
		StoreID:            "store-1",
		Address:            "1 Main St",
		PaymentType:        "CARD",
		SaleType:           domain.SaleTypeOffline,
		CumulativeDiscount: money.Zero(),
		FreightPrice:       money.Zero(),
	}
}

func TestAssembleScenarioTotal(t *testing.T) {
	catalog := catalogOf(
		domain.CatalogEntry{ProductID: "A", OfferPrice: money.MustParse("150.00"), CustomerID: "owner-a"},
		domain.CatalogEntry{ProductID: "B", OfferPrice: money.FromInt(50), CustomerID: "owner-b"},
	)

	sale, err := NewAssembler(nil).Assemble("sale-1", []domain.LineRequest{
		{ProductID: "A", QuantitySold: 3},
		{ProductID: "B", QuantitySold: 2},
	}, header(), catalog, now)
	require.NoError(t, err)

	assert.Equal(t, "550.00", sale.TotalAmount().String())
	assert.Equal(t, "owner-a", sale.CustomerID())
	assert.Equal(t, now, sale.SaleDate())

	require.Len(t, sale.Lines(), 2)
	assert.Equal(t, int64(1), sale.Lines()[0].LineNo())
	assert.True(t, sale.Lines()[0].SellingPrice().Equals(money.FromInt(150)))
	assert.Equal(t, int64(2), sale.Lines()[1].LineNo())

	sum := money.Zero()
	for _, l := range sale.Lines() {
		sum = sum.Add(l.SellingPrice().MultiplyByQuantity(l.QuantitySold()))
	}
	assert.True(t, sum.Equals(sale.TotalAmount()))

	require.Len(t, sale.DomainEvents(), 1)
	assert.Equal(t, "sale.created", sale.DomainEvents()[0].EventType())
}

func TestAssembleTotalMatchesLinesForFractionalPrices(t *testing.T) {
	catalog := catalogOf(
		domain.CatalogEntry{ProductID: "A", OfferPrice: money.MustParse("0.6633"), CustomerID: "o"},
		domain.CatalogEntry{ProductID: "B", OfferPrice: money.MustParse("19.99"), CustomerID: "o"},
	)
	lines := []domain.LineRequest{{ProductID: "A", QuantitySold: 7}, {ProductID: "B", QuantitySold: 3}, {ProductID: "A", QuantitySold: 1}}

	sale, err := NewAssembler(FirstLineOwner{}).Assemble("s", lines, header(), catalog, now)
	require.NoError(t, err)

	assert.Equal(t, "65.2764", sale.TotalAmount().Exact())
	assert.Len(t, sale.Lines(), 3)
}

func TestAssembleRejectsInvalidLines(t *testing.T) {
	catalog := catalogOf(domain.CatalogEntry{ProductID: "A", OfferPrice: money.FromInt(1), CustomerID: "o"})
	a := NewAssembler(nil)

	_, err := a.Assemble("s", nil, header(), catalog, now)
	assert.ErrorIs(t, err, domain.ErrEmptySale)

	_, err = a.Assemble("s", []domain.LineRequest{{ProductID: "A", QuantitySold: 0}}, header(), catalog, now)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = a.Assemble("s", []domain.LineRequest{{ProductID: "A", QuantitySold: -2}}, header(), catalog, now)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	h := header()
	h.FreightPrice = money.MustParse("-5")
	_, err = a.Assemble("s", []domain.LineRequest{{ProductID: "A", QuantitySold: 1}}, h, catalog, now)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestAssembleNamesEveryMissingProduct(t *testing.T) {
	catalog := catalogOf(domain.CatalogEntry{ProductID: "A", OfferPrice: money.FromInt(10), CustomerID: "o"})

	_, err := NewAssembler(nil).Assemble("s", []domain.LineRequest{
		{ProductID: "X", QuantitySold: 1}, {ProductID: "A", QuantitySold: 1}, {ProductID: "Y", QuantitySold: 2}, {ProductID: "X", QuantitySold: 3},
	}, header(), catalog, now)

	var rie *domain.ReferentialIntegrityError
	require.True(t, errors.As(err, &rie))
	assert.Equal(t, []string{"X", "Y"}, rie.ProductIDs)
	assert.Contains(t, err.Error(), "X, Y")
}

func TestOwnerPolicies(t *testing.T) {
	catalog := catalogOf(
		domain.CatalogEntry{ProductID: "A", OfferPrice: money.FromInt(1), CustomerID: "owner-a"},
		domain.CatalogEntry{ProductID: "B", OfferPrice: money.FromInt(1), CustomerID: "owner-b"},
		domain.CatalogEntry{ProductID: "C", OfferPrice: money.FromInt(1), CustomerID: "owner-a"},
	)
	mixed := []domain.LineRequest{{ProductID: "B", QuantitySold: 1}, {ProductID: "A", QuantitySold: 1}}

	sale, err := NewAssembler(FirstLineOwner{}).Assemble("s", mixed, header(), catalog, now)
	require.NoError(t, err)
	assert.Equal(t, "owner-b", sale.CustomerID())

	_, err = NewAssembler(SingleOwnerOnly{}).Assemble("s", mixed, header(), catalog, now)
	assert.ErrorIs(t, err, domain.ErrMixedOwners)

	sale, err = NewAssembler(SingleOwnerOnly{}).Assemble("s", []domain.LineRequest{{ProductID: "A", QuantitySold: 1}, {ProductID: "C", QuantitySold: 4}}, header(), catalog, now)
	require.NoError(t, err)
	assert.Equal(t, "owner-a", sale.CustomerID())
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, PolicyFirstLine, p.Name())

	p, err = PolicyByName(PolicySingleOwner)
	require.NoError(t, err)
	assert.IsType(t, SingleOwnerOnly{}, p)

	_, err = PolicyByName("split")
	assert.ErrorIs(t, err, domain.ErrUnknownOwnerPolicy)
}

func TestDistinctProductIDs(t *testing.T) {
	ids := DistinctProductIDs([]domain.LineRequest{{ProductID: "b", QuantitySold: 1}, {ProductID: "a", QuantitySold: 1}, {ProductID: "b", QuantitySold: 2}})
	assert.Equal(t, []string{"b", "a"}, ids)
}
