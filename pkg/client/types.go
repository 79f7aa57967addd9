package client

import (
	"bytes"
	"time"
)

// Family configures a column family. MaxVersions of 0 keeps every version; TTL of 0 never
// expires cells. TTL is carried in whole seconds.
type Family struct {
	Name        string
	MaxVersions int
	TTL         time.Duration
}

type TableInfo struct {
	ID        string
	Name      string
	Families  []Family
	Enabled   bool
	CreatedAt time.Time
}

// Cell is one version of a column. Timestamp is in Unix nanoseconds.
type Cell struct {
	Family    string
	Qualifier []byte
	Value     []byte
	Timestamp int64
}

// Result is one row with its cells, newest version first within each column.
type Result struct {
	Row   []byte
	Cells []Cell
}

// IsEmpty reports whether the row had no visible cells.
func (r *Result) IsEmpty() bool {
	return r == nil || len(r.Cells) == 0
}

// Value returns the newest value of the column, or nil.
func (r *Result) Value(family string, qualifier []byte) []byte {
	if r == nil {
		return nil
	}
	for _, c := range r.Cells {
		if c.Family == family && bytes.Equal(c.Qualifier, qualifier) {
			return c.Value
		}
	}
	return nil
}

// Column is a single put. A zero Timestamp lets the server choose.
type Column struct {
	Family    string
	Qualifier []byte
	Value     []byte
	Timestamp int64
}

// Scope decides how many versions a column delete removes.
type Scope string

const (
	// ScopeDefault uses the server's configured scope.
	ScopeDefault Scope = ""
	// ScopeLatest removes the newest version at or before the timestamp.
	ScopeLatest Scope = "latest"
	// ScopeAll removes every version at or before the timestamp.
	ScopeAll Scope = "all"
)

// GetOptions bounds a row read. The time range is [MinTimestamp, MaxTimestamp); zero
// bounds are open.
type GetOptions struct {
	Families     []string
	MaxVersions  int
	MinTimestamp int64
	MaxTimestamp int64
}

// ScanOptions bounds a range read. StartRow is inclusive and StopRow exclusive.
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
