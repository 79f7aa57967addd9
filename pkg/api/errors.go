package api

import (
	"github.com/cockroachdb/errors"
)

// Sentinels shared by the server and the client. Each maps to one Reason.
var (
	ErrTableNotFound   = errors.New("table not found")
	ErrFamilyNotFound  = errors.New("column family not found")
	ErrAlreadyExists   = errors.New("table already exists")
	ErrTableInUse      = errors.New("table in use")
	ErrTableDisabled   = errors.New("table disabled")
	ErrInvalidArgument = errors.New("invalid argument")
)
