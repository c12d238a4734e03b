package shared

import (
	"time"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/contracts"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
)

// EventPayload converts a domain event into the JSON-ready outbox payload.
// Money and percentages are rendered as exact decimal strings.
func EventPayload(ev domain.DomainEvent) map[string]interface{} {
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		return map[string]interface{}{
			"product_id":       e.ProductID,
			"customer_id":      e.CustomerID,
			"name":             e.Name,
			"selling_price":    e.SellingPrice.Exact(),
			"offer_percentage": e.OfferPercentage.String(),
			"offer_price":      e.OfferPrice.Exact(),
			"created_at":       e.CreatedAt,
		}

	case *domain.PriceChangedEvent:
		return map[string]interface{}{
			"product_id": e.ProductID,
			"old": map[string]string{
				"selling_price":    e.OldSellingPrice.Exact(),
				"offer_percentage": e.OldOfferPercentage.String(),
				"offer_price":      e.OldOfferPrice.Exact(),
			},
			"new": map[string]string{
				"selling_price":    e.NewSellingPrice.Exact(),
				"offer_percentage": e.NewOfferPercentage.String(),
				"offer_price":      e.NewOfferPrice.Exact(),
			},
			"changed_at": e.ChangedAt,
		}

	case *domain.CompetitorPriceRecordedEvent:
		return map[string]interface{}{
			"competitor_price_id": e.CompetitorPriceID,
			"product_id":          e.ProductID,
			"company_name":        e.CompanyName,
			"price":               e.Price.Exact(),
			"recorded_at":         e.RecordedAt,
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
