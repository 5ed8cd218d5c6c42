package forms

// OrderedList maintains a client-style ordered list of items (event lineup,
// tour stops, gallery images). Every mutation reassigns each item's order
// index as its current array position, so indices are always a dense
// zero-based permutation with no gaps or duplicates at rest.
//
// One generic implementation replaces the per-screen copies the admin forms
// used to carry.
type OrderedList[T any] struct {
	items  []T
	assign func(item *T, index int)
}

// NewOrderedList returns an empty list. assign writes an item's order index;
// it is called for every item after each mutation.
func NewOrderedList[T any](assign func(item *T, index int)) *OrderedList[T] {
	return &OrderedList[T]{assign: assign}
}

// SetItems replaces the list contents and reindexes.
func (l *OrderedList[T]) SetItems(items []T) {
	l.items = items
	l.reindex()
}

// Append adds an item at the end of the current order.
func (l *OrderedList[T]) Append(item T) {
	l.items = append(l.items, item)
	l.reindex()
}

// RemoveAt splices out the item at i. Subsequent items shift down and all
// indices are recomputed. Returns false if i is out of range.
func (l *OrderedList[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.reindex()
	return true
}

// Move removes the item at src and reinserts it so it lands at index dst in
// the resulting order, then recomputes every index. This is the drop
// operation of a drag: dropping the item at source index S onto target
// index T leaves it at position T. Returns false if src is out of range;
// dst is clamped into range.
func (l *OrderedList[T]) Move(src, dst int) bool {
	n := len(l.items)
	if src < 0 || src >= n {
		return false
	}
	if dst < 0 {
		dst = 0
	}
	if dst >= n {
		dst = n - 1
	}
	if src == dst {
		return true
	}
	item := l.items[src]
	rest := append(l.items[:src], l.items[src+1:]...)
	l.items = append(rest[:dst], append([]T{item}, rest[dst:]...)...)
	l.reindex()
	return true
}

// Items returns the list in display order. Order indices are dense and
// zero-based.
func (l *OrderedList[T]) Items() []T { return l.items }

// Len returns the number of items.
func (l *OrderedList[T]) Len() int { return len(l.items) }

func (l *OrderedList[T]) reindex() {
	for i := range l.items {
		l.assign(&l.items[i], i)
	}
}

// Reindex assigns each item's order index as its slice position. Services
// use it when building a full-replace write from typed form rows.
func Reindex[T any](items []T, assign func(item *T, index int)) {
	for i := range items {
		assign(&items[i], i)
	}
}
