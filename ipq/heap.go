// Package ipq implements the indexed binary min-heap declared in doc.go.
//
// Layout: the implicit array tree stores children of index i at 2i+1 and
// 2i+2. Every swap goes through swap(), which is the single place where the
// reverse index is rewritten, keeping index[nodes[i]] == i exact by
// construction.
package ipq

import "fmt"

// Heap is a binary min-heap over unique comparable values with a reverse
// value→position index. The zero value is not usable; construct with New or
// NewFrom. Not safe for concurrent mutation.
type Heap[T comparable] struct {
	less  Less[T]   // ordering predicate: true ⇒ a floats toward the root
	nodes []T       // implicit binary tree, children of i at 2i+1, 2i+2
	index map[T]int // value → current position in nodes
}

// New returns an empty heap ordered by less.
// Panics with ErrNilLess if less is nil (configuration misuse, detected at
// construction rather than on first comparison).
// Complexity: O(1).
func New[T comparable](less Less[T]) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return &Heap[T]{
		less:  less,
		index: make(map[T]int),
	}
}

// NewFrom builds a heap from an unordered slice in O(n) via bottom-up
// sift-down, starting at the last parent index and walking to the root.
// The input slice is copied. Values must be unique: a duplicate yields
// ErrDuplicateValue and no heap.
// Panics with ErrNilLess if less is nil.
func NewFrom[T comparable](items []T, less Less[T]) (*Heap[T], error) {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	h := &Heap[T]{
		less:  less,
		nodes: make([]T, len(items)),
		index: make(map[T]int, len(items)),
	}
	copy(h.nodes, items)

	// 1) Seed the reverse index, rejecting duplicates before any sifting.
	var v T
	var i int
	for i, v = range h.nodes {
		if _, dup := h.index[v]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, v)
		}
		h.index[v] = i
	}

	// 2) Bottom-up heapify: sift every parent down, last parent first.
	//    The leaves (indices ≥ n/2) are one-element heaps already.
	for i = len(h.nodes)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h, nil
}

// Len returns the number of stored elements. O(1).
func (h *Heap[T]) Len() int { return len(h.nodes) }

// Peek returns the root element without removing it.
// The second return is false when the heap is empty.
// Complexity: O(1), no side effects.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.nodes) == 0 {
		var zero T

		return zero, false
	}

	return h.nodes[0], true
}

// Push inserts v, then sifts it toward the root while its parent compares
// after it. Returns ErrDuplicateValue if v is already stored; the heap is
// left untouched in that case.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) error {
	if _, dup := h.index[v]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicateValue, v)
	}

	// Append at the first free leaf slot, record its position, restore order.
	h.nodes = append(h.nodes, v)
	last := len(h.nodes) - 1
	h.index[v] = last
	h.up(last)

	return nil
}

// PopMin removes and returns the root element.
// The second return is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) PopMin() (T, bool) {
	n := len(h.nodes)
	if n == 0 {
		var zero T

		return zero, false
	}

	// 1) Save the root and erase its index entry.
	root := h.nodes[0]
	delete(h.index, root)

	// 2) Move the last element into the root slot (unless the root WAS the
	//    last element), shrink storage, and sift the moved element down.
	last := n - 1
	if last > 0 {
		h.nodes[0] = h.nodes[last]
		h.index[h.nodes[0]] = 0
	}
	h.nodes = h.nodes[:last]
	if last > 0 {
		h.down(0)
	}

	return root, true
}

// Remove deletes v from the heap, wherever it currently sits.
// Returns false (no-op) if v is absent.
//
// The vacated slot is filled by the last element, which may then violate the
// heap-order invariant in either direction relative to its new neighbors, so
// it is sifted down and, if that did not move it, up.
// Complexity: O(log n).
func (h *Heap[T]) Remove(v T) bool {
	i, ok := h.index[v]
	if !ok {
		return false
	}
	delete(h.index, v)

	last := len(h.nodes) - 1
	if i != last {
		h.nodes[i] = h.nodes[last]
		h.index[h.nodes[i]] = i
	}
	h.nodes = h.nodes[:last]

	if i != last {
		if !h.down(i) {
			h.up(i)
		}
	}

	return true
}

// Update replaces oldVal with newVal in place and restores heap order.
// This is the decrease-key operation: newVal must compare strictly ahead of
// oldVal under the configured ordering.
//
// Errors (checked in order, before the index mapping is touched):
//
//   - ErrValueNotFound  — oldVal is not stored.
//   - ErrNotImproving   — !less(newVal, oldVal).
//   - ErrDuplicateValue — newVal is already stored.
//
// On success the element can only move toward the root, so a single sift-up
// suffices. Complexity: O(log n).
func (h *Heap[T]) Update(oldVal, newVal T) error {
	i, ok := h.index[oldVal]
	if !ok {
		return fmt.Errorf("%w: %v", ErrValueNotFound, oldVal)
	}
	if !h.less(newVal, oldVal) {
		return fmt.Errorf("%w: %v does not improve on %v", ErrNotImproving, newVal, oldVal)
	}
	// less(newVal, oldVal) implies newVal != oldVal, so any hit here is a
	// genuine second occupant.
	if _, dup := h.index[newVal]; dup {
		return fmt.Errorf("%w: %v", ErrDuplicateValue, newVal)
	}

	// Overwrite the slot, fix the index for both values, sift toward root.
	delete(h.index, oldVal)
	h.nodes[i] = newVal
	h.index[newVal] = i
	h.up(i)

	return nil
}

// Clear removes every element, resetting the heap to empty.
// Complexity: O(n) (the index map is rebuilt).
func (h *Heap[T]) Clear() {
	h.nodes = h.nodes[:0]
	h.index = make(map[T]int)
}

// up sifts the element at i toward the root while it compares ahead of its
// parent.
func (h *Heap[T]) up(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if !h.less(h.nodes[i], h.nodes[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down sifts the element at i away from the root while a child compares
// ahead of it, always descending into the smaller child. Reports whether the
// element moved at all (Remove uses this to decide whether to try up).
func (h *Heap[T]) down(i int) bool {
	n := len(h.nodes)
	moved := false
	var left, right, min int
	for {
		left = 2*i + 1
		if left >= n {
			break
		}
		min = left
		if right = left + 1; right < n && h.less(h.nodes[right], h.nodes[left]) {
			min = right
		}
		if !h.less(h.nodes[min], h.nodes[i]) {
			break
		}
		h.swap(i, min)
		i = min
		moved = true
	}

	return moved
}

// swap exchanges two slots and rewrites both index entries. Every structural
// move in the heap funnels through here, which is what keeps the reverse
// index exact.
func (h *Heap[T]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.index[h.nodes[i]] = i
	h.index[h.nodes[j]] = j
}
