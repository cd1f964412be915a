package enhancement

// EffectTable is an ordered, read-only mapping from effect ID to Effect.
// The zero value is an empty table.
type EffectTable struct {
	order []EffectID
	byID  map[EffectID]Effect
}

// NewEffectTable builds a table from ids and effects in the given order.
// Later duplicates replace the earlier value but keep the first position.
func NewEffectTable(ids []EffectID, effects []Effect) EffectTable {
	t := EffectTable{
		order: make([]EffectID, 0, len(ids)),
		byID:  make(map[EffectID]Effect, len(ids)),
	}
	for i, id := range ids {
		if i >= len(effects) {
			break
		}
		if _, exists := t.byID[id]; !exists {
			t.order = append(t.order, id)
		}
		t.byID[id] = effects[i]
	}
	return t
}

// Get returns the effect for id
func (t EffectTable) Get(id EffectID) (Effect, bool) {
	e, ok := t.byID[id]
	return e, ok
}

// Has reports whether id is in the table
func (t EffectTable) Has(id EffectID) bool {
	_, ok := t.byID[id]
	return ok
}

// Len returns the number of effects
func (t EffectTable) Len() int {
	return len(t.order)
}

// IDs returns the effect IDs in display order. The slice is a copy.
func (t EffectTable) IDs() []EffectID {
	out := make([]EffectID, len(t.order))
	copy(out, t.order)
	return out
}

// Each calls fn for every effect in display order until fn returns false
func (t EffectTable) Each(fn func(id EffectID, e Effect) bool) {
	for _, id := range t.order {
		if !fn(id, t.byID[id]) {
			return
		}
	}
}

// Clone returns a table that shares no storage with t
func (t EffectTable) Clone() EffectTable {
	effects := make([]Effect, len(t.order))
	for i, id := range t.order {
		effects[i] = t.byID[id]
	}
	return NewEffectTable(t.order, effects)
}

// Equal reports whether both tables hold the same effects in the same order
func (t EffectTable) Equal(other EffectTable) bool {
	if len(t.order) != len(other.order) {
		return false
	}
	for i, id := range t.order {
		if other.order[i] != id || other.byID[id] != t.byID[id] {
			return false
		}
	}
	return true
}
