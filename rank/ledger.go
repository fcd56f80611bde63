// Package rank - the sorted result ledger.
package rank

// Entry is one recorded result: a layout name and its aggregate score.
type Entry struct {
	Name  string
	Score float64
}

// node is one link of the ledger. Nodes are owned exclusively by their
// ledger and never aliased elsewhere.
type node struct {
	Entry
	next *node
}

// Ledger is an unbounded collection of entries kept sorted by descending
// score. The zero value is an empty, ready-to-use ledger.
type Ledger struct {
	head *node
	n    int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Insert records one result, keeping the ledger sorted descending by
// score. The new entry is placed immediately before the first existing
// entry whose score is not strictly greater, so among equal scores the
// newest entry comes first. O(n).
func (l *Ledger) Insert(name string, score float64) {
	nn := &node{Entry: Entry{Name: name, Score: score}}

	if l.head == nil || l.head.Score <= score {
		nn.next = l.head
		l.head = nn
		l.n++

		return
	}

	cur := l.head
	for cur.next != nil && cur.next.Score > score {
		cur = cur.next
	}
	nn.next = cur.next
	cur.next = nn
	l.n++
}

// Clear drops every entry. Safe on an empty ledger.
func (l *Ledger) Clear() {
	l.head = nil
	l.n = 0
}

// Len reports the number of recorded entries.
func (l *Ledger) Len() int { return l.n }

// Best returns the highest-scoring entry and false when the ledger is
// empty.
func (l *Ledger) Best() (Entry, bool) {
	if l.head == nil {
		return Entry{}, false
	}

	return l.head.Entry, true
}

// Walk calls fn for every entry in descending-score order. Walking stops
// early when fn returns false.
func (l *Ledger) Walk(fn func(Entry) bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(cur.Entry) {
			return
		}
	}
}

// Top returns up to k entries from the head in order. k <= 0 yields nil.
func (l *Ledger) Top(k int) []Entry {
	if k <= 0 {
		return nil
	}

	out := make([]Entry, 0, k)
	l.Walk(func(e Entry) bool {
		out = append(out, e)

		return len(out) < k
	})

	return out
}
