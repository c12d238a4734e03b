package domain

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/money"
)

// DomainEvent mirrors the product context's event contract.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// SaleCreatedEvent is raised once per persisted sale.
type SaleCreatedEvent struct {
	SaleID      string
	CustomerID  string
	StoreID     string
	TotalAmount money.Money
	LineCount   int
	CreatedAt   time.Time
}

func (e *SaleCreatedEvent) EventType() string {
	return "sale.created"
}

func (e *SaleCreatedEvent) AggregateID() string {
	return e.SaleID
}

func (e *SaleCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}
