//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type outboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Status      string
	Payload     map[string]any
	CreatedAt   time.Time
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []outboxEvent {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return items
}

// fetchOutboxEvents returns the events of one aggregate in write order with
// their JSON payload decoded.
func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]outboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, status, payload, created_at
        FROM outbox_events
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": aggregateID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var (
			e       outboxEvent
			payload string
		)
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Status, &payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}
