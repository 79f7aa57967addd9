package store

import (
	"bytes"
	"context"
	"golang.org/x/sync/errgroup"
)

// Get returns up to maxVersions versions of one column, newest first. maxVersions below 1
// reads only the latest version. A missing row or column yields an empty slice and no error.
func (s *Store) Get(table string, rowKey []byte, family string, qualifier []byte, maxVersions int) ([]Cell, error) {
	res, err := s.GetRow(table, rowKey, &GetOptions{
		Families:    []string{family},
		MaxVersions: maxVersions,
	})
	if err != nil {
		return nil, err
	}
	cells := res.ColumnCells(family, qualifier)
	if cells == nil {
		cells = []Cell{}
	}
	return cells, nil
}

// GetRow reads every visible column of a row, bounded by opts. A missing row yields an
// empty Result.
func (s *Store) GetRow(table string, rowKey []byte, opts *GetOptions) (*Result, error) {
	t, err := s.onlineTable(table)
	if err != nil {
		return nil, err
	}
	if len(rowKey) == 0 {
		return nil, newError(ErrInvalidArgument, "row key required")
	}
	if opts == nil {
		opts = &GetOptions{}
	}
	if err := t.checkFamilies(opts.Families); err != nil {
		return nil, err
	}

	result := &Result{Row: bytes.Clone(rowKey)}
	key := string(rowKey)
	sh := t.shardFor(key)

	sh.mutex.RLock()
	defer sh.mutex.RUnlock()

	r, exists := sh.rows[key]
	if !exists {
		return result, nil
	}
	result.Cells = t.read(r, opts, s.now())
	return result, nil
}

// Scan reads rows in ascending key order. Rows with no visible cells are skipped and do not
// count toward the limit.
func (s *Store) Scan(ctx context.Context, table string, opts *ScanOptions) ([]*Result, error) {
	t, err := s.onlineTable(table)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &ScanOptions{}
	}
	if err := t.checkFamilies(opts.Families); err != nil {
		return nil, err
	}

	keys := t.keysInRange(opts)
	if len(keys) == 0 {
		return []*Result{}, nil
	}

	// group key positions by shard so each shard is read-locked once
	byShard := make(map[*shard][]int)
	for i, key := range keys {
		sh := t.shardFor(key)
		byShard[sh] = append(byShard[sh], i)
	}

	getOpts := opts.getOptions()
	now := s.now()
	results := make([]*Result, len(keys))

	g, gCtx := errgroup.WithContext(ctx)
	for sh, positions := range byShard {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sh.mutex.RLock()
			defer sh.mutex.RUnlock()
			for _, i := range positions {
				r, exists := sh.rows[keys[i]]
				if !exists {
					// removed after the index was read
					continue
				}
				if cells := t.read(r, getOpts, now); len(cells) > 0 {
					results[i] = &Result{Row: bytes.Clone(r.key), Cells: cells}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		out = append(out, res)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

// PurgeExpired physically removes versions older than their family's TTL, across every
// table, and returns how many were removed. Reads already hide those versions.
func (s *Store) PurgeExpired(ctx context.Context) (int, error) {
	s.mutex.RLock()
	tables := make([]*table, 0, len(s.tables))
	for _, t := range s.tables {
		tables = append(tables, t)
	}
	s.mutex.RUnlock()

	now := s.now()
	purged := 0
	for _, t := range tables {
		cutoffs := make(map[string]int64)
		for _, f := range t.families {
			if f.TTL > 0 {
				cutoffs[f.Name] = now.Add(-f.TTL).UnixNano()
			}
		}
		if len(cutoffs) == 0 {
			continue
		}

		for _, sh := range t.shards {
			if err := ctx.Err(); err != nil {
				return purged, err
			}
			purged += t.purgeShard(sh, cutoffs)
		}
	}
	return purged, nil
}

func (t *table) purgeShard(sh *shard, cutoffs map[string]int64) int {
	sh.mutex.Lock()
	defer sh.mutex.Unlock()

	purged := 0
	for key, r := range sh.rows {
		for family, cutoff := range cutoffs {
			qualifiers, ok := r.families[family]
			if !ok {
				continue
			}
			for q, current := range qualifiers {
				kept, n := current.purgeBefore(cutoff)
				purged += n
				if len(kept) == 0 {
					delete(qualifiers, q)
				} else {
					qualifiers[q] = kept
				}
			}
			if len(qualifiers) == 0 {
				delete(r.families, family)
			}
		}
		if r.isEmpty() {
			delete(sh.rows, key)
			t.indexRemove(key)
		}
	}
	return purged
}

func (t *table) checkFamilies(families []string) error {
	for _, f := range families {
		if _, err := t.family(f); err != nil {
			return err
		}
	}
	return nil
}
