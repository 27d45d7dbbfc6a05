// Package ipq provides an indexed binary min-heap: a priority queue that, in
// addition to the usual Peek / Push / PopMin operations, supports removing or
// re-prioritizing an arbitrary element *by value* in O(log n).
//
// What & Why
//
//   - A plain binary heap can find its minimum in O(1) and insert/extract in
//     O(log n), but locating an arbitrary element costs a linear scan.
//
//   - ipq.Heap augments the implicit array tree with a reverse index
//     (value → array position), kept exact across every mutation. Locating an
//     element is then O(1), so Remove and Update (decrease-key) are O(log n).
//     This is the operation Dijkstra's algorithm needs to re-prioritize a
//     frontier vertex without pushing stale duplicates.
//
// Ordering
//
// The heap is generic over any comparable element type T and is ordered by a
// caller-supplied predicate less(a, b): true iff a should sit nearer the root
// than b. Pass "a < b" for a min-queue, "a > b" for a max-queue.
//
// Identity
//
// Elements are indexed by value, so values must be unique while stored:
// Push rejects a value already present with ErrDuplicateValue, and the bulk
// constructor NewFrom rejects duplicate inputs the same way. If your elements
// are not naturally unique, embed a discriminator (an id field) in the value.
//
// Invariants (hold after every mutating operation):
//
//   - Heap order: for every element with a parent, less(child, parent) is
//     false.
//   - Index exactness: index[nodes[i]] == i for every valid i, and the index
//     holds no other entries. Presence in the index is equivalent to presence
//     in storage.
//
// Update only supports *improving* changes: the new value must compare ahead
// of the old one under the configured ordering (ErrNotImproving otherwise).
// Arbitrary re-prioritization in both directions is deliberately out of
// scope; Remove + Push covers it at the same asymptotic cost.
//
// Complexity:
//
//	New       O(1)      NewFrom   O(n)       Peek    O(1)
//	Push      O(log n)  PopMin    O(log n)   Remove  O(log n)
//	Update    O(log n)  Clear     O(n)       Len     O(1)
//
// The Heap is not safe for concurrent mutation; give each goroutine its own.
package ipq
