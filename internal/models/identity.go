package models

import "sort"

// IdentitySet tracks statement ids already observed across ingestion runs.
// The set is owned by the caller: the pipeline takes a copy of the previous
// set, merges newly seen ids into it and returns the updated set. It is never
// persisted by the engine itself.
type IdentitySet map[string]struct{}

// NewIdentitySet builds a set from the given ids.
func NewIdentitySet(ids ...string) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IdentitySet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s IdentitySet) Add(id string) {
	s[id] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s IdentitySet) Clone() IdentitySet {
	c := make(IdentitySet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// List returns the ids in sorted order.
func (s IdentitySet) List() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
