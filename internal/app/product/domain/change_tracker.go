package domain

import "sort"

// ChangeTracker records which columns of an aggregate were touched so the
// repository can build an update mutation for exactly those columns.
type ChangeTracker struct {
	dirty map[string]struct{}
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty marks every given field as modified.
func (ct *ChangeTracker) MarkDirty(fields ...string) {
	for _, f := range fields {
		ct.dirty[f] = struct{}{}
	}
}

func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified fields in lexical order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for f := range ct.dirty {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}
