package assess

import "github.com/kamstrup/intmap"

type bound uint8

const (
	exact bound = iota
	lowerBound
	upperBound
)

type entry struct {
	score float64
	depth int
	bound bound
}

// table memoizes search results by position hash for one top-level search.
// A positive limit stops new keys from being added once reached.
type table struct {
	entries *intmap.Map[uint64, entry]
	limit   int
}

func newTable(limit int) *table {
	return &table{
		entries: intmap.New[uint64, entry](1 << 12),
		limit:   limit,
	}
}

// probe returns the entry for key if it was searched at least depth plies deep.
func (t *table) probe(key uint64, depth int) (entry, bool) {
	e, c := t.entries.Get(key)
	if !c || e.depth < depth {
		return entry{}, false
	}
	return e, true
}

func (t *table) store(key uint64, e entry) {
	old, c := t.entries.Get(key)
	if c && old.depth > e.depth {
		return
	}
	if !c && t.limit > 0 && t.entries.Len() >= t.limit {
		return
	}
	t.entries.Put(key, e)
}

func (t *table) len() int {
	return t.entries.Len()
}
