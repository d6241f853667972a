package hashing

// entry identifies a stored count: the same position searched to a
// different depth is a different entry.
type entry struct {
	hash  uint64
	depth int
}

// Table caches perft node counts by position key and depth.
type Table struct {
	counts map[entry]uint64
	// maxCapacity is the maximum number of entries (0 = unlimited)
	maxCapacity int
	probes      int
	hits        int
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		counts:      make(map[entry]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the stored count for hash at depth.
func (t *Table) Probe(hash uint64, depth int) (uint64, bool) {
	t.probes++
	n, ok := t.counts[entry{hash, depth}]
	if ok {
		t.hits++
	}
	return n, ok
}

// Store records a count. Nothing is stored once the table is full.
func (t *Table) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.counts[entry{hash, depth}] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.counts) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.counts)
}

// Stats returns the number of probes and how many of them hit.
func (t *Table) Stats() (probes, hits int) {
	return t.probes, t.hits
}

// Reset clears the table and its statistics.
func (t *Table) Reset() {
	t.counts = make(map[entry]uint64)
	t.probes = 0
	t.hits = 0
}
