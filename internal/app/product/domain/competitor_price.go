package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// CompetitorPrice is a price quote for one of our products observed at
// another seller.
type CompetitorPrice struct {
	id             string
	productID      string
	companyName    string
	price          money.Money
	freight        money.Money
	customerRating *decimal.Decimal
	createdAt      time.Time
	events         []DomainEvent
}

func NewCompetitorPrice(id, productID, companyName string, price, freight money.Money, rating *decimal.Decimal, now time.Time) (*CompetitorPrice, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil, ErrEmptyCompanyName
	}
	if price.IsNegative() || freight.IsNegative() {
		return nil, ErrNegativePrice
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	c := &CompetitorPrice{
		id:             id,
		productID:      productID,
		companyName:    name,
		price:          price,
		freight:        freight,
		customerRating: rating,
		createdAt:      now,
	}
	c.events = []DomainEvent{&CompetitorPriceRecordedEvent{
		CompetitorPriceID: id,
		ProductID:         productID,
		CompanyName:       name,
		Price:             price,
		RecordedAt:        now,
	}}
	return c, nil
}

func (c *CompetitorPrice) ID() string {
	return c.id
}

func (c *CompetitorPrice) ProductID() string {
	return c.productID
}

func (c *CompetitorPrice) CompanyName() string {
	return c.companyName
}

func (c *CompetitorPrice) Price() money.Money {
	return c.price
}

func (c *CompetitorPrice) Freight() money.Money {
	return c.freight
}

func (c *CompetitorPrice) CustomerRating() *decimal.Decimal {
	return c.customerRating
}

func (c *CompetitorPrice) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CompetitorPrice) DomainEvents() []DomainEvent {
	return c.events
}

