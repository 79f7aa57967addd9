package cdc

import (
	"github.com/google/uuid"
	"time"
)

// Operation names the kind of change an Event describes.
type Operation string

const (
	OperationPut          Operation = "put"
	OperationDelete       Operation = "delete"
	OperationCreateTable  Operation = "create_table"
	OperationDisableTable Operation = "disable_table"
	OperationEnableTable  Operation = "enable_table"
	OperationDeleteTable  Operation = "delete_table"
)

// Event is a single change applied to the store. Row, Family and Qualifier are empty for
// table-level operations; Value is only set on puts.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Operation Operation `json:"operation"`
	Table     string    `json:"table"`
	Row       []byte    `json:"row,omitempty"`
	Family    string    `json:"family,omitempty"`
	Qualifier []byte    `json:"qualifier,omitempty"`
	Value     []byte    `json:"value,omitempty"`
	Timestamp int64     `json:"timestamp,omitempty"`
	EmittedAt time.Time `json:"emittedAt"`
}
