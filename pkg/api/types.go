// Package api holds the wire types and the gRPC service definition shared by the
// VersionTable server and its Go client.
package api

import (
	"math"
)

// Failed calls carry an errdetails.ErrorInfo in ErrorDomain whose Reason tells apart errors
// that share a gRPC status code.
const (
	ErrorDomain = "versiontable"

	ReasonTableNotFound   = "TABLE_NOT_FOUND"
	ReasonFamilyNotFound  = "FAMILY_NOT_FOUND"
	ReasonAlreadyExists   = "TABLE_EXISTS"
	ReasonTableInUse      = "TABLE_IN_USE"
	ReasonTableDisabled   = "TABLE_DISABLED"
	ReasonInvalidArgument = "INVALID_ARGUMENT"
)

// Delete scopes accepted by DeleteColumn.Scope. Empty defers to the server default.
const (
	ScopeLatest = "latest"
	ScopeAll    = "all"
)

type Empty struct{}

type FamilySpec struct {
	Name        string `json:"name"`
	MaxVersions int32  `json:"maxVersions,omitempty"`
	TTLSeconds  int64  `json:"ttlSeconds,omitempty"`
}

type TableDescriptor struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Families      []*FamilySpec `json:"families"`
	Enabled       bool          `json:"enabled"`
	CreatedAtUnix int64         `json:"createdAtUnix"`
}

type CreateTableRequest struct {
	Table    string        `json:"table"`
	Families []*FamilySpec `json:"families"`
}

// TableRequest names the table of an admin call: disable, enable, delete, describe.
type TableRequest struct {
	Table string `json:"table"`
}

type ListTablesRequest struct{}

type ListTablesResponse struct {
	Tables []*TableDescriptor `json:"tables"`
}

// Column is a single put. A zero Timestamp lets the server pick the current time.
type Column struct {
	Family    string `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Value     []byte `json:"value"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type PutRequest struct {
	Table   string    `json:"table"`
	Row     []byte    `json:"row"`
	Columns []*Column `json:"columns"`
}

// DeleteColumn removes versions at or before Timestamp (0 is now). WholeFamily ignores
// Qualifier and removes every version of every qualifier in the family.
type DeleteColumn struct {
	Family      string `json:"family"`
	Qualifier   []byte `json:"qualifier,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
	Scope       string `json:"scope,omitempty"`
	WholeFamily bool   `json:"wholeFamily,omitempty"`
}

type DeleteRequest struct {
	Table   string          `json:"table"`
	Row     []byte          `json:"row"`
	Columns []*DeleteColumn `json:"columns"`
}

type GetRequest struct {
	Table       string `json:"table"`
	Row         []byte `json:"row"`
	Family      string `json:"family"`
	Qualifier   []byte `json:"qualifier"`
	MaxVersions int32  `json:"maxVersions,omitempty"`
}

type GetRowRequest struct {
	Table        string   `json:"table"`
	Row          []byte   `json:"row"`
	Families     []string `json:"families,omitempty"`
	MaxVersions  int32    `json:"maxVersions,omitempty"`
	MinTimestamp int64    `json:"minTimestamp,omitempty"`
	MaxTimestamp int64    `json:"maxTimestamp,omitempty"`
}

type ScanRequest struct {
	Table        string   `json:"table"`
	StartRow     []byte   `json:"startRow,omitempty"`
	StopRow      []byte   `json:"stopRow,omitempty"`
	Prefix       []byte   `json:"prefix,omitempty"`
	Families     []string `json:"families,omitempty"`
	MaxVersions  int32    `json:"maxVersions,omitempty"`
	MinTimestamp int64    `json:"minTimestamp,omitempty"`
	MaxTimestamp int64    `json:"maxTimestamp,omitempty"`
	Limit        int32    `json:"limit,omitempty"`
}

type Cell struct {
	Family    string `json:"family"`
	Qualifier []byte `json:"qualifier"`
	Value     []byte `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// Result holds the cells of one row, newest version first within each column.
type Result struct {
	Row   []byte  `json:"row"`
	Cells []*Cell `json:"cells"`
}

type ScanResponse struct {
	Results []*Result `json:"results"`
}

// Int32 narrows a count for the wire, saturating at the int32 bounds.
func Int32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}
