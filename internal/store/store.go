// Package store is an in-memory, column-family oriented, multi-versioned table store.
//
// A table owns a fixed set of column families. Every (row, family, qualifier) coordinate keeps
// an ordered list of versions, newest first, bounded by the family's MaxVersions. Puts are
// additive: each put adds a version rather than replacing the previous one. Deletes remove
// versions and never bring older ones back implicitly; whatever older versions are still
// retained simply become the newest visible ones.
//
// Tables go through an explicit lifecycle: CreateTable, then any number of data operations,
// then DisableTable before DeleteTable releases every row.
package store

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/litetable/versiontable/internal/cdc"
	"github.com/rs/zerolog/log"
	"math"
	"sort"
	"sync"
	"time"
)

const (
	defaultShardCount = 16
	maxShardCount     = 1024
)

// changeEmitter receives every applied change. It must not block.
type changeEmitter interface {
	Emit(e *cdc.Event)
}

// Store is the catalog of tables and the entry point for every table operation.
type Store struct {
	mutex  sync.RWMutex
	tables map[string]*table

	shardCount  int
	deleteScope DeleteScope
	clock       *clock
	now         func() time.Time
	cdc         changeEmitter
}

type Config struct {
	// ShardCount is the number of row shards per table. 0 selects the default.
	ShardCount int
	// DeleteScope is applied to column deletes that do not choose one. Defaults to
	// DeleteLatest.
	DeleteScope DeleteScope
	// CDC is optional.
	CDC changeEmitter
	// Now overrides the wall clock, mostly for tests.
	Now func() time.Time
}

func (c *Config) validate() error {
	var errGrp []error
	if c.ShardCount < 0 || c.ShardCount > maxShardCount {
		errGrp = append(errGrp, errors.Newf("shard count must be between 1 and %d", maxShardCount))
	}
	if c.DeleteScope < DeleteScopeDefault || c.DeleteScope > DeleteAllVersions {
		errGrp = append(errGrp, errors.Newf("unknown delete scope: %d", c.DeleteScope))
	}
	return errors.Join(errGrp...)
}

// New creates an empty store.
func New(cfg *Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	shards := cfg.ShardCount
	if shards == 0 {
		shards = defaultShardCount
	}
	scope := cfg.DeleteScope
	if scope == DeleteScopeDefault {
		scope = DeleteLatest
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		tables:      make(map[string]*table),
		shardCount:  shards,
		deleteScope: scope,
		clock:       newClock(now),
		now:         now,
		cdc:         cfg.CDC,
	}, nil
}

// CreateTable registers a new, enabled table with the given column families.
func (s *Store) CreateTable(name string, families ...FamilySpec) (TableDescriptor, error) {
	if err := validateTable(name, families); err != nil {
		return TableDescriptor{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.tables[name]; exists {
		return TableDescriptor{}, newError(ErrAlreadyExists, "%s", name)
	}

	t := newTable(uuid.NewString(), name, families, s.shardCount, s.now())
	s.tables[name] = t

	log.Info().Str("table", name).Int("families", len(families)).Msg("table created")
	s.emit(&cdc.Event{Operation: cdc.OperationCreateTable, Table: name})
	return t.descriptor(), nil
}

func validateTable(name string, families []FamilySpec) error {
	if name == "" {
		return newError(ErrInvalidArgument, "table name required")
	}
	if len(families) == 0 {
		return newError(ErrInvalidArgument, "table %s needs at least one column family", name)
	}

	seen := make(map[string]struct{}, len(families))
	for _, f := range families {
		if f.Name == "" {
			return newError(ErrInvalidArgument, "table %s: family name required", name)
		}
		if _, dup := seen[f.Name]; dup {
			return newError(ErrInvalidArgument, "table %s: duplicate family %s", name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.MaxVersions < 0 || f.MaxVersions > math.MaxInt32 {
			return newError(ErrInvalidArgument, "family %s: max versions %d out of range", f.Name, f.MaxVersions)
		}
		if f.TTL < 0 {
			return newError(ErrInvalidArgument, "family %s: ttl cannot be negative", f.Name)
		}
	}
	return nil
}

// DisableTable takes a table offline. Data operations fail until it is enabled again.
// Disabling a disabled table is a no-op.
func (s *Store) DisableTable(name string) error {
	return s.setEnabled(name, false)
}

// EnableTable brings a disabled table back online.
func (s *Store) EnableTable(name string) error {
	return s.setEnabled(name, true)
}

func (s *Store) setEnabled(name string, enabled bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	t, exists := s.tables[name]
	if !exists {
		return newError(ErrTableNotFound, "%s", name)
	}
	if t.enabled.Swap(enabled) == enabled {
		return nil
	}

	op := cdc.OperationDisableTable
	if enabled {
		op = cdc.OperationEnableTable
	}
	log.Info().Str("table", name).Bool("enabled", enabled).Msg("table state changed")
	s.emit(&cdc.Event{Operation: op, Table: name})
	return nil
}

// DeleteTable removes a disabled table and releases all of its rows.
func (s *Store) DeleteTable(name string) error {
	s.mutex.Lock()
	t, exists := s.tables[name]
	if !exists {
		s.mutex.Unlock()
		return newError(ErrTableNotFound, "%s", name)
	}
	if t.enabled.Load() {
		s.mutex.Unlock()
		return newError(ErrTableInUse, "%s must be disabled before it is deleted", name)
	}
	delete(s.tables, name)
	s.mutex.Unlock()

	t.release()

	log.Info().Str("table", name).Msg("table deleted")
	s.emit(&cdc.Event{Operation: cdc.OperationDeleteTable, Table: name})
	return nil
}

// TableExists reports whether a table is registered, enabled or not.
func (s *Store) TableExists(name string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, exists := s.tables[name]
	return exists
}

// IsTableEnabled reports whether the table accepts data operations.
func (s *Store) IsTableEnabled(name string) (bool, error) {
	t, err := s.table(name)
	if err != nil {
		return false, err
	}
	return t.enabled.Load(), nil
}

// DescribeTable returns the descriptor of a table.
func (s *Store) DescribeTable(name string) (TableDescriptor, error) {
	t, err := s.table(name)
	if err != nil {
		return TableDescriptor{}, err
	}
	return t.descriptor(), nil
}

// ListTables returns every table ordered by name.
func (s *Store) ListTables() []TableDescriptor {
	s.mutex.RLock()
	out := make([]TableDescriptor, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, t.descriptor())
	}
	s.mutex.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Store) table(name string) (*table, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	t, exists := s.tables[name]
	if !exists {
		return nil, newError(ErrTableNotFound, "%s", name)
	}
	return t, nil
}

// onlineTable returns a table that accepts data operations.
func (s *Store) onlineTable(name string) (*table, error) {
	t, err := s.table(name)
	if err != nil {
		return nil, err
	}
	if !t.enabled.Load() {
		return nil, newError(ErrTableDisabled, "%s", name)
	}
	return t, nil
}

func (s *Store) emit(e *cdc.Event) {
	if s.cdc == nil {
		return
	}
	s.cdc.Emit(e)
}
