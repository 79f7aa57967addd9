package store

import (
	"bytes"
	"github.com/litetable/versiontable/internal/cdc"
	"github.com/rs/zerolog/log"
)

// Put adds a new version of the column at the current time.
func (s *Store) Put(table string, rowKey []byte, family string, qualifier, value []byte) error {
	return s.Mutate(table, NewMutation(rowKey).Put(family, qualifier, value))
}

// PutAt adds a version at an explicit timestamp. A version that already exists at that
// timestamp is overwritten.
func (s *Store) PutAt(table string, rowKey []byte, family string, qualifier, value []byte, ts int64) error {
	return s.Mutate(table, NewMutation(rowKey).PutAt(family, qualifier, value, ts))
}

// Delete removes versions of the column at or before the current time, using the store's
// default delete scope.
func (s *Store) Delete(table string, rowKey []byte, family string, qualifier []byte) error {
	return s.Mutate(table, NewMutation(rowKey).Delete(family, qualifier))
}

// DeleteAt removes versions of the column at or before ts. With DeleteLatest only the most
// recent of those versions goes; newer versions are never touched.
func (s *Store) DeleteAt(table string, rowKey []byte, family string, qualifier []byte, ts int64, scope DeleteScope) error {
	return s.Mutate(table, NewMutation(rowKey).DeleteAt(family, qualifier, ts, scope))
}

// DeleteRow removes every version of every column of the row.
func (s *Store) DeleteRow(table string, rowKey []byte) error {
	t, err := s.onlineTable(table)
	if err != nil {
		return err
	}
	m := NewMutation(rowKey)
	for _, f := range t.families {
		m.DeleteFamily(f.Name)
	}
	return s.Mutate(table, m)
}

// Mutate applies every op of m to its row atomically. All families are validated before
// anything is written, so a failing mutation leaves the row untouched.
func (s *Store) Mutate(table string, m *Mutation) error {
	t, err := s.onlineTable(table)
	if err != nil {
		return err
	}
	if m == nil || len(m.Row) == 0 {
		return newError(ErrInvalidArgument, "row key required")
	}

	specs := make([]FamilySpec, len(m.Ops))
	for i, op := range m.Ops {
		if op.Family == "" {
			return newError(ErrInvalidArgument, "family required")
		}
		spec, err := t.family(op.Family)
		if err != nil {
			return err
		}
		if op.Timestamp < 0 {
			return newError(ErrInvalidArgument, "negative timestamp %d", op.Timestamp)
		}
		specs[i] = spec
	}

	key := string(m.Row)
	sh := t.shardFor(key)

	sh.mutex.Lock()
	defer sh.mutex.Unlock()

	r, exists := sh.rows[key]
	if !exists {
		r = &row{
			key:      bytes.Clone(m.Row),
			families: make(map[string]map[string]series),
		}
	}

	for i, op := range m.Ops {
		ts := op.Timestamp
		if ts == 0 {
			ts = s.clock.next()
		}

		switch op.Type {
		case OpPut:
			s.applyPut(t, r, specs[i], op, ts)
		case OpDelete:
			s.applyDelete(t, r, op, ts)
		case OpDeleteFamily:
			s.applyDeleteFamily(t, r, op.Family, ts)
		default:
			log.Warn().Int("op", int(op.Type)).Msg("ignoring unknown column op")
		}
	}

	// keep the shard and the index in step with the row's emptiness
	switch {
	case !exists && !r.isEmpty():
		sh.rows[key] = r
		t.indexAdd(key)
	case exists && r.isEmpty():
		delete(sh.rows, key)
		t.indexRemove(key)
	}
	return nil
}

func (s *Store) applyPut(t *table, r *row, spec FamilySpec, op ColumnOp, ts int64) {
	qualifiers, ok := r.families[op.Family]
	if !ok {
		qualifiers = make(map[string]series)
		r.families[op.Family] = qualifiers
	}

	q := string(op.Qualifier)
	value := bytes.Clone(op.Value)
	updated, evicted := qualifiers[q].insert(version{
		value:     value,
		timestamp: ts,
	}, spec.MaxVersions)
	qualifiers[q] = updated

	if evicted > 0 {
		log.Debug().
			Str("table", t.name).
			Str("family", op.Family).
			Int("evicted", evicted).
			Msg("version bound reached")
	}

	s.emit(&cdc.Event{
		Operation: cdc.OperationPut,
		Table:     t.name,
		Row:       bytes.Clone(r.key),
		Family:    op.Family,
		Qualifier: []byte(q),
		Value:     bytes.Clone(value),
		Timestamp: ts,
	})
}

func (s *Store) applyDelete(t *table, r *row, op ColumnOp, ts int64) {
	qualifiers, ok := r.families[op.Family]
	if !ok {
		return
	}
	q := string(op.Qualifier)
	current, ok := qualifiers[q]
	if !ok {
		return
	}

	scope := op.Scope
	if scope == DeleteScopeDefault {
		scope = s.deleteScope
	}

	var removed []version
	if scope == DeleteAllVersions {
		current, removed = current.removeAll(ts)
	} else {
		current, removed = current.removeLatest(ts)
	}
	if len(removed) == 0 {
		return
	}

	if len(current) == 0 {
		delete(qualifiers, q)
		if len(qualifiers) == 0 {
			delete(r.families, op.Family)
		}
	} else {
		qualifiers[q] = current
	}

	for _, v := range removed {
		s.emit(&cdc.Event{
			Operation: cdc.OperationDelete,
			Table:     t.name,
			Row:       bytes.Clone(r.key),
			Family:    op.Family,
			Qualifier: []byte(q),
			Timestamp: v.timestamp,
		})
	}
}

func (s *Store) applyDeleteFamily(t *table, r *row, family string, ts int64) {
	qualifiers, ok := r.families[family]
	if !ok {
		return
	}
	for q, current := range qualifiers {
		kept, removed := current.removeAll(ts)
		if len(kept) == 0 {
			delete(qualifiers, q)
		} else {
			qualifiers[q] = kept
		}
		for _, v := range removed {
			s.emit(&cdc.Event{
				Operation: cdc.OperationDelete,
				Table:     t.name,
				Row:       bytes.Clone(r.key),
				Family:    family,
				Qualifier: []byte(q),
				Timestamp: v.timestamp,
			})
		}
	}
	if len(qualifiers) == 0 {
		delete(r.families, family)
	}
}
