package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the domain.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is created.
type ProductCreatedEvent struct {
	ProductID       string
	CustomerID      string
	Name            string
	SellingPrice    money.Money
	OfferPercentage decimal.Decimal
	OfferPrice      money.Money
	CreatedAt       time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// PriceChangedEvent is raised when the selling price or offer percentage of a
// product changes.
type PriceChangedEvent struct {
	ProductID          string
	OldSellingPrice    money.Money
	OldOfferPercentage decimal.Decimal
	OldOfferPrice      money.Money
	NewSellingPrice    money.Money
	NewOfferPercentage decimal.Decimal
	NewOfferPrice      money.Money
	ChangedAt          time.Time
}

func (e *PriceChangedEvent) EventType() string {
	return "product.price_changed"
}

func (e *PriceChangedEvent) AggregateID() string {
	return e.ProductID
}

func (e *PriceChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// CompetitorPriceRecordedEvent is raised when a competitor quote is stored.
type CompetitorPriceRecordedEvent struct {
	CompetitorPriceID string
	ProductID         string
	CompanyName       string
	Price             money.Money
	RecordedAt        time.Time
}

func (e *CompetitorPriceRecordedEvent) EventType() string {
	return "product.competitor_price_recorded"
}

func (e *CompetitorPriceRecordedEvent) AggregateID() string {
	return e.ProductID
}

func (e *CompetitorPriceRecordedEvent) OccurredAt() time.Time {
	return e.RecordedAt
}
