package store

import (
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/pkg/api"
)

var (
	ErrTableNotFound   = api.ErrTableNotFound
	ErrFamilyNotFound  = api.ErrFamilyNotFound
	ErrAlreadyExists   = api.ErrAlreadyExists
	ErrTableInUse      = api.ErrTableInUse
	ErrTableDisabled   = api.ErrTableDisabled
	ErrInvalidArgument = api.ErrInvalidArgument
)

// Error is a store failure: one of the sentinels above plus what it was about.
// errors.Is matches the sentinel.
type Error struct {
	sentinel error
	detail   error
}

func (e *Error) Error() string {
	if e.detail == nil {
		return e.sentinel.Error()
	}
	return e.sentinel.Error() + ": " + e.detail.Error()
}

func (e *Error) Unwrap() error {
	return e.sentinel
}

func newError(sentinel error, format string, args ...interface{}) *Error {
	return &Error{
		sentinel: sentinel,
		detail:   errors.Newf(format, args...),
	}
}
