package store

import (
	"bytes"
	"time"
)

// FamilySpec configures a column family at table creation.
//
// MaxVersions bounds how many versions of a single cell coordinate are retained; 0 keeps
// every version. TTL hides and eventually purges cells older than now-TTL; 0 disables expiry.
type FamilySpec struct {
	Name        string        `json:"name"`
	MaxVersions int           `json:"maxVersions"`
	TTL         time.Duration `json:"ttl"`
}

// TableDescriptor describes a table as it is registered in the catalog.
type TableDescriptor struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Families  []FamilySpec `json:"families"`
	Enabled   bool         `json:"enabled"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Family returns the spec of the named family.
func (d TableDescriptor) Family(name string) (FamilySpec, bool) {
	for _, f := range d.Families {
		if f.Name == name {
			return f, true
		}
	}
	return FamilySpec{}, false
}

// Cell is one version of a value at a (row, family, qualifier) coordinate. Timestamp is in
// Unix nanoseconds.
type Cell struct {
	Row       []byte `json:"row"`
	Family    string `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Value     []byte `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// Result holds the cells read for a single row: families in table declaration order, then
// qualifiers in byte order, then timestamps descending.
type Result struct {
	Row   []byte `json:"row"`
	Cells []Cell `json:"cells"`
}

// IsEmpty reports whether the row had no visible cells.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Cells) == 0
}

// ColumnCells returns every version read for the column, newest first.
func (r *Result) ColumnCells(family string, qualifier []byte) []Cell {
	if r == nil {
		return nil
	}
	var cells []Cell
	for _, c := range r.Cells {
		if c.Family == family && bytes.Equal(c.Qualifier, qualifier) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Value returns the latest value of the column, or nil when the column is absent.
func (r *Result) Value(family string, qualifier []byte) []byte {
	cells := r.ColumnCells(family, qualifier)
	if len(cells) == 0 {
		return nil
	}
	return cells[0].Value
}

// DeleteScope decides how many versions a column delete removes.
type DeleteScope int

const (
	// DeleteScopeDefault defers to the store's configured scope.
	DeleteScopeDefault DeleteScope = iota
	// DeleteLatest removes the most recent version at or before the delete timestamp.
	DeleteLatest
	// DeleteAllVersions removes every version at or before the delete timestamp.
	DeleteAllVersions
)

func (s DeleteScope) String() string {
	switch s {
	case DeleteLatest:
		return "latest"
	case DeleteAllVersions:
		return "all"
	default:
		return "default"
	}
}

// ParseDeleteScope accepts "latest", "all" or "" (default).
func ParseDeleteScope(s string) (DeleteScope, error) {
	switch s {
	case "":
		return DeleteScopeDefault, nil
	case "latest":
		return DeleteLatest, nil
	case "all":
		return DeleteAllVersions, nil
	}
	return DeleteScopeDefault, newError(ErrInvalidArgument, "unknown delete scope %q", s)
}

// OpType is the kind of change a ColumnOp applies.
type OpType int

const (
	OpPut OpType = iota
	OpDelete
	// OpDeleteFamily removes every version of every qualifier in the family at or before
	// the timestamp.
	OpDeleteFamily
)

// ColumnOp is a single change within a Mutation. A zero Timestamp means "now".
type ColumnOp struct {
	Type      OpType
	Family    string
	Qualifier []byte
	Value     []byte
	Timestamp int64
	Scope     DeleteScope
}

// Mutation groups changes to one row. The whole mutation is applied under the row's lock,
// so readers see either none or all of it.
type Mutation struct {
	Row []byte
	Ops []ColumnOp
}

// NewMutation starts a mutation for the row.
func NewMutation(row []byte) *Mutation {
	return &Mutation{Row: row}
}

// Put appends a put of value at the current time.
func (m *Mutation) Put(family string, qualifier, value []byte) *Mutation {
	return m.PutAt(family, qualifier, value, 0)
}

// PutAt appends a put of value at an explicit timestamp.
func (m *Mutation) PutAt(family string, qualifier, value []byte, ts int64) *Mutation {
	m.Ops = append(m.Ops, ColumnOp{
		Type:      OpPut,
		Family:    family,
		Qualifier: qualifier,
		Value:     value,
		Timestamp: ts,
	})
	return m
}

// Delete appends a column delete using the store's default scope.
func (m *Mutation) Delete(family string, qualifier []byte) *Mutation {
	return m.DeleteAt(family, qualifier, 0, DeleteScopeDefault)
}

// DeleteAt appends a column delete at an explicit timestamp and scope.
func (m *Mutation) DeleteAt(family string, qualifier []byte, ts int64, scope DeleteScope) *Mutation {
	m.Ops = append(m.Ops, ColumnOp{
		Type:      OpDelete,
		Family:    family,
		Qualifier: qualifier,
		Timestamp: ts,
		Scope:     scope,
	})
	return m
}

// DeleteFamily appends a delete of the whole family at the current time.
func (m *Mutation) DeleteFamily(family string) *Mutation {
	m.Ops = append(m.Ops, ColumnOp{
		Type:   OpDeleteFamily,
		Family: family,
	})
	return m
}

// GetOptions bounds a row read. MaxTimestamp of 0 means unbounded; the time range is
// [MinTimestamp, MaxTimestamp).
type GetOptions struct {
	Families     []string
	MaxVersions  int
	MinTimestamp int64
	MaxTimestamp int64
}

// ScanOptions bounds a range read. StartRow is inclusive, StopRow exclusive; an empty bound
// is open. Prefix, when set, restricts rows to keys that start with it.
type ScanOptions struct {
	StartRow     []byte
	StopRow      []byte
	Prefix       []byte
	Families     []string
	MaxVersions  int
	MinTimestamp int64
	MaxTimestamp int64
	Limit        int
}

func (o *ScanOptions) getOptions() *GetOptions {
	return &GetOptions{
		Families:     o.Families,
		MaxVersions:  o.MaxVersions,
		MinTimestamp: o.MinTimestamp,
		MaxTimestamp: o.MaxTimestamp,
	}
}
