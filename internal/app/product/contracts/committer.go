package contracts

import (
	"context"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
)

// Committer applies a mutation plan atomically. Usecases depend on this
// interface so tests can capture plans or inject commit failures.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}
