package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the columns of a new outbox row. processed_at
// starts NULL.
func BuildInsertMap(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: spanner.NullTime{},
	}
}

func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertMap(TableName, values)
}
