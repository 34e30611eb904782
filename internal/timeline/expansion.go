package timeline

import (
	"encoding/json"
	"sort"
	"strconv"
)

// KVStore is the session-scoped persistence port for expansion state.
// Implementations must be synchronous; Get reports whether the key exists.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ExpansionState owns the set of currently-expanded row identifiers for one
// scope. When constructed with a store it hydrates from it synchronously and
// re-serializes the full set after every mutation. Only membership matters;
// iteration order never affects correctness.
type ExpansionState struct {
	store KVStore // nil for purely in-memory state
	scope string
	ids   map[string]struct{}
}

// NewExpansionState creates the expansion set for the given scope, hydrating
// from the store when one is supplied. Malformed or non-array persisted
// content is treated as an empty set, never as an error.
func NewExpansionState(store KVStore, scope string) *ExpansionState {
	s := &ExpansionState{store: store, scope: scope, ids: make(map[string]struct{})}
	if store == nil || scope == "" {
		return s
	}
	raw, ok := store.Get(scope)
	if !ok {
		return s
	}
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return s
	}
	for _, e := range entries {
		if id := idString(e); id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// idString normalizes a persisted entry to a string row id. Stored arrays may
// hold strings or raw numbers (historical formats).
func idString(e any) string {
	switch v := e.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

// IsExpanded reports membership of a row id in the expansion set.
func (s *ExpansionState) IsExpanded(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle flips the row id in or out of the set.
func (s *ExpansionState) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.persist()
}

// EnsureExpanded adds the row id to the set. Idempotent.
func (s *ExpansionState) EnsureExpanded(id string) {
	if _, ok := s.ids[id]; ok {
		return
	}
	s.ids[id] = struct{}{}
	s.persist()
}

// ExpandAll replaces the whole set with the given ids.
func (s *ExpansionState) ExpandAll(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	s.persist()
}

// IDs returns the expanded row ids, sorted for stable serialization.
func (s *ExpansionState) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HasPersistedState reports whether the set is non-empty.
func (s *ExpansionState) HasPersistedState() bool {
	return len(s.ids) > 0
}

// persist writes the full set back to the store as a JSON array. Best-effort:
// a failing store degrades to in-memory state rather than aborting the render.
func (s *ExpansionState) persist() {
	if s.store == nil || s.scope == "" {
		return
	}
	raw, err := json.Marshal(s.IDs())
	if err != nil {
		return
	}
	_ = s.store.Set(s.scope, string(raw))
}
