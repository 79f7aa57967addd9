package store

import (
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/cdc"
	"github.com/stretchr/testify/require"
	"math"
	"sync"
	"testing"
	"time"
)

const (
	testTable  = "test_users"
	testFamily = "info"
)

// recorder is a changeEmitter that keeps every event.
type recorder struct {
	mu     sync.Mutex
	events []*cdc.Event
}

func (r *recorder) Emit(e *cdc.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) operations() []cdc.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]cdc.Operation, len(r.events))
	for i, e := range r.events {
		ops[i] = e.Operation
	}
	return ops
}

// newTestStore creates a store with one table holding the "info" family (10 versions), and
// guarantees the table is disabled and deleted when the test ends.
func newTestStore(t *testing.T, cfg *Config) *Store {
	t.Helper()
	if cfg == nil {
		cfg = &Config{}
	}
	s, err := New(cfg)
	require.NoError(t, err)

	_, err = s.CreateTable(testTable, FamilySpec{Name: testFamily, MaxVersions: 10})
	require.NoError(t, err)

	t.Cleanup(func() {
		if !s.TableExists(testTable) {
			return
		}
		require.NoError(t, s.DisableTable(testTable))
		require.NoError(t, s.DeleteTable(testTable))
	})
	return s
}

func values(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = string(c.Value)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg     *Config
		wantErr bool
	}{
		"empty config": {
			cfg: &Config{},
		},
		"negative shards": {
			cfg:     &Config{ShardCount: -1},
			wantErr: true,
		},
		"too many shards": {
			cfg:     &Config{ShardCount: maxShardCount + 1},
			wantErr: true,
		},
		"unknown delete scope": {
			cfg:     &Config{DeleteScope: DeleteScope(9)},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := New(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, defaultShardCount, got.shardCount)
			require.Equal(t, DeleteLatest, got.deleteScope)
		})
	}
}

func TestStore_CreateTable(t *testing.T) {
	t.Parallel()

	t.Run("describes the table", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)
		s := newTestStore(t, nil)

		desc, err := s.DescribeTable(testTable)
		req.NoError(err)
		req.Equal(testTable, desc.Name)
		req.NotEmpty(desc.ID)
		req.True(desc.Enabled)
		f, ok := desc.Family(testFamily)
		req.True(ok)
		req.Equal(10, f.MaxVersions)
	})

	t.Run("already exists", func(t *testing.T) {
		t.Parallel()
		s := newTestStore(t, nil)
		_, err := s.CreateTable(testTable, FamilySpec{Name: "other"})
		require.True(t, errors.Is(err, ErrAlreadyExists))
	})

	invalid := map[string]struct {
		name     string
		families []FamilySpec
	}{
		"empty name":        {name: "", families: []FamilySpec{{Name: "f"}}},
		"no families":       {name: "t"},
		"empty family name": {name: "t", families: []FamilySpec{{}}},
		"duplicate family":  {name: "t", families: []FamilySpec{{Name: "f"}, {Name: "f"}}},
		"negative versions": {name: "t", families: []FamilySpec{{Name: "f", MaxVersions: -1}}},
		"versions past int32": {name: "t", families: []FamilySpec{{Name: "f", MaxVersions: math.MaxInt32 + 1}}},
		"negative ttl":      {name: "t", families: []FamilySpec{{Name: "f", TTL: -time.Second}}},
	}
	for name, tc := range invalid {
		t.Run(name, func(t *testing.T) {
			s, err := New(&Config{})
			require.NoError(t, err)
			_, err = s.CreateTable(tc.name, tc.families...)
			require.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			require.Empty(t, s.ListTables())
		})
	}
}

func TestStore_TableLifecycle(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	rec := &recorder{}
	s, err := New(&Config{CDC: rec})
	req.NoError(err)

	_, err = s.CreateTable("b", FamilySpec{Name: "f"})
	req.NoError(err)
	_, err = s.CreateTable("a", FamilySpec{Name: "f"})
	req.NoError(err)

	tables := s.ListTables()
	req.Len(tables, 2)
	req.Equal("a", tables[0].Name)
	req.Equal("b", tables[1].Name)

	req.NoError(s.Put("a", []byte("r1"), "f", []byte("q"), []byte("v")))

	// delete without disable
	err = s.DeleteTable("a")
	req.True(errors.Is(err, ErrTableInUse))
	req.True(s.TableExists("a"))

	req.NoError(s.DisableTable("a"))
	req.NoError(s.DisableTable("a"))
	enabled, err := s.IsTableEnabled("a")
	req.NoError(err)
	req.False(enabled)

	// data operations are refused while disabled
	err = s.Put("a", []byte("r1"), "f", []byte("q"), []byte("v"))
	req.True(errors.Is(err, ErrTableDisabled))
	_, err = s.Get("a", []byte("r1"), "f", []byte("q"), 1)
	req.True(errors.Is(err, ErrTableDisabled))

	req.NoError(s.EnableTable("a"))
	cells, err := s.Get("a", []byte("r1"), "f", []byte("q"), 1)
	req.NoError(err)
	req.Equal([]string{"v"}, values(cells))

	req.NoError(s.DisableTable("a"))
	req.NoError(s.DeleteTable("a"))
	req.False(s.TableExists("a"))

	// recreating the name starts from an empty table
	_, err = s.CreateTable("a", FamilySpec{Name: "f"})
	req.NoError(err)
	cells, err = s.Get("a", []byte("r1"), "f", []byte("q"), 1)
	req.NoError(err)
	req.Empty(cells)

	req.Equal([]cdc.Operation{
		cdc.OperationCreateTable,
		cdc.OperationCreateTable,
		cdc.OperationPut,
		cdc.OperationDisableTable,
		cdc.OperationEnableTable,
		cdc.OperationDisableTable,
		cdc.OperationDeleteTable,
		cdc.OperationCreateTable,
	}, rec.operations())
}

func TestStore_TableNotFound(t *testing.T) {
	t.Parallel()
	s, err := New(&Config{})
	require.NoError(t, err)

	row := []byte("r")
	checks := map[string]func() error{
		"put": func() error { return s.Put("missing", row, "f", nil, nil) },
		"get": func() error {
			_, err := s.Get("missing", row, "f", nil, 1)
			return err
		},
		"delete":  func() error { return s.Delete("missing", row, "f", nil) },
		"disable": func() error { return s.DisableTable("missing") },
		"enable":  func() error { return s.EnableTable("missing") },
		"drop":    func() error { return s.DeleteTable("missing") },
		"describe": func() error {
			_, err := s.DescribeTable("missing")
			return err
		},
		"scan": func() error {
			_, err := s.Scan(t.Context(), "missing", nil)
			return err
		},
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			require.True(t, errors.Is(check(), ErrTableNotFound))
		})
	}
}
