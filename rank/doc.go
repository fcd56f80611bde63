// Package rank keeps an ordered ledger of the best layouts found during a
// search: name and score pairs, always sorted by descending score.
//
// What:
//
//   - Ledger: a caller-owned singly linked list of entries. Insert keeps
//     descending order; a tie is placed ahead of previously inserted equal
//     scores, so newer equal results surface first in their tie block.
//   - Clear drops every entry; calling it on an empty ledger is a no-op.
//   - Len, Best and Walk provide read access without exposing the links.
//
// Why:
//
//   - The annealing loop records every accepted candidate; a sorted list
//     with O(n) insert is plenty at search-result cardinalities and keeps
//     reporting trivial (walk from the head).
//
// Concurrency:
//
//   - A Ledger has no internal locking. Concurrent insertion corrupts the
//     links; callers running parallel searches must serialize Insert (one
//     inserter goroutine, or a mutex around it).
package rank
