package client

import (
	"github.com/litetable/versiontable/pkg/api"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Failed calls match these with errors.Is.
var (
	ErrTableNotFound   = api.ErrTableNotFound
	ErrFamilyNotFound  = api.ErrFamilyNotFound
	ErrAlreadyExists   = api.ErrAlreadyExists
	ErrTableInUse      = api.ErrTableInUse
	ErrTableDisabled   = api.ErrTableDisabled
	ErrInvalidArgument = api.ErrInvalidArgument
)

var reasons = map[string]error{
	api.ReasonTableNotFound:   ErrTableNotFound,
	api.ReasonFamilyNotFound:  ErrFamilyNotFound,
	api.ReasonAlreadyExists:   ErrAlreadyExists,
	api.ReasonTableInUse:      ErrTableInUse,
	api.ReasonTableDisabled:   ErrTableDisabled,
	api.ReasonInvalidArgument: ErrInvalidArgument,
}

// statusError keeps the gRPC status of a failed call while matching its sentinel.
type statusError struct {
	st       *status.Status
	sentinel error
}

func (e *statusError) Error() string {
	return e.st.Message()
}

func (e *statusError) Unwrap() error {
	return e.sentinel
}

// GRPCStatus lets status.FromError and status.Code see through the translation.
func (e *statusError) GRPCStatus() *status.Status {
	return e.st
}

// translate turns a failed call into an error that matches the server's sentinel.
func translate(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != api.ErrorDomain {
			continue
		}
		if sentinel, ok := reasons[info.GetReason()]; ok {
			return &statusError{st: st, sentinel: sentinel}
		}
	}
	return err
}
