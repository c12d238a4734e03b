// Package outbox turns domain events into transactional outbox rows that are
// committed in the same plan as the state change they describe.
package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/murkotick/storefront-ledger-service/internal/models/m_outbox"
)

// Source is implemented by the domain events of every bounded context.
type Source interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// Event is the application-level representation of an outbox row.
type Event struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}

// NewEvent enriches a domain event with an id, a JSON payload and the
// pending status.
func NewEvent(src Source, payload any, now time.Time) (*Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal outbox payload for %s: %w", src.EventType(), err)
	}
	return &Event{
		EventID:      uuid.New().String(),
		EventType:    src.EventType(),
		AggregateID:  src.AggregateID(),
		PayloadJSON:  string(b),
		Status:       m_outbox.StatusPending,
		CreatedAtUTC: now.UTC(),
	}, nil
}

// Repo is the Spanner implementation of the outbox repository. It returns
// mutations and never applies them.
type Repo struct{}

func NewRepo() *Repo {
	return &Repo{}
}

func (r *Repo) InsertMut(e *Event) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	))
}
