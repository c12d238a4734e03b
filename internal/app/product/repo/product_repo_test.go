package repo

import (
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain/services"
	"github.com/murkotick/storefront-ledger-service/internal/models/m_product"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

func newProduct(t *testing.T, pct *decimal.Decimal) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(domain.NewProductParams{
		ID:              "prod-1",
		CustomerID:      "cust-1",
		Name:            "Tea",
		CostPrice:       money.FromInt(100),
		SellingPrice:    money.FromInt(200),
		OfferPercentage: pct,
		Quantity:        3,
		Category:        "drinks",
		Weight:          decimal.RequireFromString("0.25"),
	}, services.NewPricingCalculator(), time.Now().UTC())
	require.NoError(t, err)
	return p
}

func ratEq(t *testing.T, want string, got interface{}) {
	t.Helper()
	r, ok := got.(*big.Rat)
	require.True(t, ok, "expected *big.Rat, got %T", got)
	w, _ := new(big.Rat).SetString(want)
	assert.Equal(t, 0, w.Cmp(r), "want %s got %s", want, r.FloatString(9))
}

func TestInsertValuesCarryPricingTriple(t *testing.T) {
	d := decimal.NewFromInt(25)
	values := buildInsertValues(newProduct(t, &d))

	ratEq(t, "200", values[m_product.ColSellingPrice])
	ratEq(t, "150", values[m_product.ColOfferPrice])
	ratEq(t, "100", values[m_product.ColCostPrice])

	pct, ok := values[m_product.ColOfferPercentage].(spanner.NullNumeric)
	require.True(t, ok)
	assert.True(t, pct.Valid)
	assert.Equal(t, "25.000000000", pct.Numeric.FloatString(9))

	rating, ok := values[m_product.ColCustomerRating].(spanner.NullNumeric)
	require.True(t, ok)
	assert.False(t, rating.Valid)

	for _, col := range m_product.SelectColumns {
		_, present := values[col]
		assert.True(t, present, "insert map misses column %s", col)
	}

	assert.NotNil(t, NewProductRepo().InsertMut(newProduct(t, &d)))
}

func TestUpdateValuesOnlyPricingColumns(t *testing.T) {
	d := decimal.NewFromInt(25)
	p := newProduct(t, &d)

	assert.Nil(t, buildUpdateValues(p))
	assert.Nil(t, NewProductRepo().UpdateMut(p))

	require.NoError(t, p.Reprice(money.FromInt(100), decimal.NewFromInt(10), services.NewPricingCalculator(), time.Now()))

	values := buildUpdateValues(p)
	require.Len(t, values, 4)
	ratEq(t, "100", values[m_product.ColSellingPrice])
	ratEq(t, "90", values[m_product.ColOfferPrice])
	assert.Contains(t, values, m_product.ColUpdatedAt)
	assert.NotContains(t, values, m_product.ColName)

	assert.NotNil(t, NewProductRepo().UpdateMut(p))
}

func TestHistoryAndCompetitorRepos(t *testing.T) {
	assert.Nil(t, NewPriceHistoryRepo().InsertMut(nil))
	assert.Nil(t, NewCompetitorPriceRepo().InsertMut(nil))

	e := domain.NewPriceHistoryEntry("h-1", "prod-1", money.FromInt(100), nil, time.Now())
	assert.NotNil(t, NewPriceHistoryRepo().InsertMut(e))

	c, err := domain.NewCompetitorPrice("c-1", "prod-1", "Acme", money.FromInt(90), money.Zero(), nil, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, NewCompetitorPriceRepo().InsertMut(c))
}
