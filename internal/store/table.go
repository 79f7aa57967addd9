package store

import (
	"bytes"
	"github.com/google/btree"
	"hash/fnv"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const indexDegree = 32

// row holds every series of one row key: family -> qualifier -> versions.
type row struct {
	key      []byte
	families map[string]map[string]series
}

func (r *row) isEmpty() bool {
	return len(r.families) == 0
}

// shard owns a slice of a table's rows and the lock serializing their mutations.
type shard struct {
	mutex sync.RWMutex
	rows  map[string]*row
}

// table is the in-memory representation of a created table.
//
// Rows are spread over shards by an FNV hash of the row key so that writers to unrelated rows
// do not contend. The btree index keeps every live row key in order for range scans; it is
// only touched while the owning shard's write lock is held (shard lock, then index lock).
type table struct {
	id        string
	name      string
	createdAt time.Time
	families  []FamilySpec
	enabled   atomic.Bool

	shards []*shard

	indexMutex sync.Mutex
	index      *btree.BTreeG[string]
}

func newTable(id, name string, families []FamilySpec, shardCount int, createdAt time.Time) *table {
	t := &table{
		id:        id,
		name:      name,
		createdAt: createdAt,
		families:  slices.Clone(families),
		shards:    make([]*shard, shardCount),
		index:     btree.NewOrderedG[string](indexDegree),
	}
	for i := range t.shards {
		t.shards[i] = &shard{rows: make(map[string]*row)}
	}
	t.enabled.Store(true)
	return t
}

func (t *table) descriptor() TableDescriptor {
	return TableDescriptor{
		ID:        t.id,
		Name:      t.name,
		Families:  slices.Clone(t.families),
		Enabled:   t.enabled.Load(),
		CreatedAt: t.createdAt,
	}
}

func (t *table) family(name string) (FamilySpec, error) {
	for _, f := range t.families {
		if f.Name == name {
			return f, nil
		}
	}
	return FamilySpec{}, newError(ErrFamilyNotFound, "%s:%s", t.name, name)
}

// shardFor picks the shard of a row key.
func (t *table) shardFor(key string) *shard {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return t.shards[h.Sum32()%uint32(len(t.shards))]
}

func (t *table) indexAdd(key string) {
	t.indexMutex.Lock()
	t.index.ReplaceOrInsert(key)
	t.indexMutex.Unlock()
}

func (t *table) indexRemove(key string) {
	t.indexMutex.Lock()
	t.index.Delete(key)
	t.indexMutex.Unlock()
}

// keysInRange lists indexed row keys in ascending order within the scan bounds.
func (t *table) keysInRange(opts *ScanOptions) []string {
	start := string(opts.StartRow)
	prefix := string(opts.Prefix)
	if prefix > start {
		start = prefix
	}
	stop := string(opts.StopRow)

	var keys []string
	t.indexMutex.Lock()
	defer t.indexMutex.Unlock()
	t.index.AscendGreaterOrEqual(start, func(key string) bool {
		if stop != "" && key >= stop {
			return false
		}
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return false
		}
		keys = append(keys, key)
		return true
	})
	return keys
}

// release drops every row of the table.
func (t *table) release() {
	for _, s := range t.shards {
		s.mutex.Lock()
		clear(s.rows)
		s.mutex.Unlock()
	}
	t.indexMutex.Lock()
	t.index.Clear(false)
	t.indexMutex.Unlock()
}

// read copies the visible cells of r. The caller holds the shard's read lock.
func (t *table) read(r *row, opts *GetOptions, now time.Time) []Cell {
	var cells []Cell
	for _, spec := range t.families {
		if len(opts.Families) > 0 && !slices.Contains(opts.Families, spec.Name) {
			continue
		}
		qualifiers, ok := r.families[spec.Name]
		if !ok {
			continue
		}

		w := window{
			maxVersions:  opts.MaxVersions,
			minTimestamp: opts.MinTimestamp,
			maxTimestamp: opts.MaxTimestamp,
		}
		if spec.TTL > 0 {
			w.expiredAt = now.Add(-spec.TTL).UnixNano()
		}

		names := make([]string, 0, len(qualifiers))
		for q := range qualifiers {
			names = append(names, q)
		}
		sort.Strings(names)

		for _, q := range names {
			for _, v := range qualifiers[q].visible(w) {
				cells = append(cells, Cell{
					Row:       bytes.Clone(r.key),
					Family:    spec.Name,
					Qualifier: []byte(q),
					Value:     bytes.Clone(v.value),
					Timestamp: v.timestamp,
				})
			}
		}
	}
	return cells
}
