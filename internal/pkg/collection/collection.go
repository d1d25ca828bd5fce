// Package collection provides an ordered, key-indexed set of records used as
// the in-memory shape of every ledger. Operations never mutate the receiver;
// they return a new Set so callers can hold on to snapshots safely.
package collection

// Set keeps items in insertion order with an index from key to position.
type Set[K comparable, T any] struct {
	items []T
	index map[K]int
	keyOf func(T) K
}

// New builds a Set from items. When two items share a key the first one wins
// its slot and later duplicates replace its value, so the result never holds
// duplicate keys.
func New[K comparable, T any](items []T, keyOf func(T) K) Set[K, T] {
	s := Set[K, T]{
		items: make([]T, 0, len(items)),
		index: make(map[K]int, len(items)),
		keyOf: keyOf,
	}
	for _, it := range items {
		k := keyOf(it)
		if pos, ok := s.index[k]; ok {
			s.items[pos] = it
			continue
		}
		s.index[k] = len(s.items)
		s.items = append(s.items, it)
	}
	return s
}

// Get returns the item stored under k.
func (s Set[K, T]) Get(k K) (T, bool) {
	pos, ok := s.index[k]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[pos], true
}

// Has reports whether k is present.
func (s Set[K, T]) Has(k K) bool {
	_, ok := s.index[k]
	return ok
}

// Put replaces the item with the same key in place, or appends it.
func (s Set[K, T]) Put(item T) Set[K, T] {
	next := s.clone()
	k := next.keyOf(item)
	if pos, ok := next.index[k]; ok {
		next.items[pos] = item
		return next
	}
	next.index[k] = len(next.items)
	next.items = append(next.items, item)
	return next
}

// Delete removes k. The second result is false when k was absent, in which
// case the returned Set is the receiver.
func (s Set[K, T]) Delete(k K) (Set[K, T], bool) {
	pos, ok := s.index[k]
	if !ok {
		return s, false
	}
	items := make([]T, 0, len(s.items)-1)
	items = append(items, s.items[:pos]...)
	items = append(items, s.items[pos+1:]...)
	return New(items, s.keyOf), true
}

// Items returns a copy of the items in insertion order.
func (s Set[K, T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s Set[K, T]) Len() int {
	return len(s.items)
}

// Filter returns the items for which keep returns true, in order.
func (s Set[K, T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, it := range s.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// First returns the first item, in insertion order, for which match is true.
func (s Set[K, T]) First(match func(T) bool) (T, bool) {
	for _, it := range s.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s Set[K, T]) clone() Set[K, T] {
	items := make([]T, len(s.items), len(s.items)+1)
	copy(items, s.items)
	index := make(map[K]int, len(s.index)+1)
	for k, v := range s.index {
		index[k] = v
	}
	return Set[K, T]{items: items, index: index, keyOf: s.keyOf}
}
