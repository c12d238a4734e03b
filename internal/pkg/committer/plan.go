package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations one use case wants applied as a single unit.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends m; nil mutations (nothing to write) are ignored.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends every non-nil mutation in ms.
func (p *Plan) AddAll(ms []*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Len() int {
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
