package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanIgnoresNilMutations(t *testing.T) {
	p := NewPlan()
	require.True(t, p.IsEmpty())

	p.Add(nil)
	p.AddAll([]*spanner.Mutation{nil, spanner.Insert("sales", []string{"sale_id"}, []interface{}{"s-1"}), nil})

	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Len())
	assert.Len(t, p.Mutations(), 1)
}

func TestAdapterEmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	assert.NoError(t, a.Apply(context.Background(), nil))
	assert.NoError(t, a.Apply(context.Background(), NewPlan()))
}

func TestAdapterWithoutClient(t *testing.T) {
	a := NewAdapter(nil)
	p := NewPlan()
	p.Add(spanner.Insert("sales", []string{"sale_id"}, []interface{}{"s-1"}))

	assert.ErrorIs(t, a.Apply(context.Background(), p), ErrNoClient)
}
