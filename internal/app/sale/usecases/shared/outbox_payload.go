package shared

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/app/sale/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// EventPayload converts a sale event into the JSON-ready outbox payload.
func EventPayload(ev domain.DomainEvent) map[string]interface{} {
	if e, ok := ev.(*domain.SaleCreatedEvent); ok {
		return map[string]interface{}{
			"sale_id":      e.SaleID,
			"customer_id":  e.CustomerID,
			"store_id":     e.StoreID,
			"total_amount": e.TotalAmount.Exact(),
			"line_count":   e.LineCount,
			"created_at":   e.CreatedAt,
		}
	}
	return map[string]interface{}{
		"aggregate_id": ev.AggregateID(),
		"occurred_at":  ev.OccurredAt(),
	}
}

// AddOutboxEvents appends one outbox insert per domain event to plan.
func AddOutboxEvents(plan *committer.Plan, repo contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		e, err := outbox.NewEvent(ev, EventPayload(ev), now)
		if err != nil {
			return err
		}
		plan.Add(repo.InsertMut(e))
	}
	return nil
}
