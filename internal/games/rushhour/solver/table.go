package solver

import (
	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// parentTable maps every reached state to how it was reached.
// It doubles as the closed/visited set.
type parentTable interface {
	Get(k core.Key) (core.Entry, bool)
	Has(k core.Key) bool
	Put(k core.Key, e core.Entry)
	Len() int
}

// recordTable stores typed entries.
type recordTable map[core.Key]core.Entry

func (t recordTable) Get(k core.Key) (core.Entry, bool) {
	e, ok := t[k]
	return e, ok
}

func (t recordTable) Has(k core.Key) bool {
	_, ok := t[k]
	return ok
}

func (t recordTable) Put(k core.Key, e core.Entry) { t[k] = e }
func (t recordTable) Len() int                     { return len(t) }

// packedTable stores entries in the sentinel-separated byte form.
// withCost is false for BFS and DFS, which record only parent and move.
type packedTable struct {
	entries  map[core.Key]string
	withCost bool
}

func newPackedTable(withCost bool) *packedTable {
	return &packedTable{entries: make(map[core.Key]string), withCost: withCost}
}

func (t *packedTable) Get(k core.Key) (core.Entry, bool) {
	raw, ok := t.entries[k]
	if !ok {
		return core.Entry{}, false
	}
	e, err := core.DecodeEntry([]byte(raw))
	if err != nil {
		// Entries are only ever written by Put, so this is a programming error.
		panic(err)
	}
	return e, true
}

func (t *packedTable) Has(k core.Key) bool {
	_, ok := t.entries[k]
	return ok
}

func (t *packedTable) Put(k core.Key, e core.Entry) {
	t.entries[k] = string(core.EncodeEntry(e, t.withCost))
}

func (t *packedTable) Len() int { return len(t.entries) }

// newParentTable picks the table implementation for the given options.
func newParentTable(opts Options, withCost bool) parentTable {
	if opts.PackedTable {
		return newPackedTable(withCost)
	}
	return make(recordTable)
}
