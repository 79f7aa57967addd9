package grpc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -destination=store_mock.go -package=grpc -source=service.go

type tableStore interface {
	CreateTable(name string, families ...store.FamilySpec) (store.TableDescriptor, error)
	DisableTable(name string) error
	EnableTable(name string) error
	DeleteTable(name string) error
	DescribeTable(name string) (store.TableDescriptor, error)
	ListTables() []store.TableDescriptor
	Mutate(table string, m *store.Mutation) error
	Get(table string, rowKey []byte, family string, qualifier []byte, maxVersions int) ([]store.Cell, error)
	GetRow(table string, rowKey []byte, opts *store.GetOptions) (*store.Result, error)
	Scan(ctx context.Context, table string, opts *store.ScanOptions) ([]*store.Result, error)
}

// versionTable serves the VersionTable service from a tableStore.
type versionTable struct {
	api.UnimplementedVersionTableServer
	store tableStore
}

// invalid joins validation failures into one InvalidArgument status.
func invalid(errGrp []error) error {
	if len(errGrp) == 0 {
		return nil
	}
	return withReason(status.New(codes.InvalidArgument, errors.Join(errGrp...).Error()),
		api.ReasonInvalidArgument)
}

// toStatus maps a store error onto a gRPC status carrying the matching reason.
func toStatus(err error) error {
	var (
		code   codes.Code
		reason string
	)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		code, reason = codes.NotFound, api.ReasonTableNotFound
	case errors.Is(err, store.ErrFamilyNotFound):
		code, reason = codes.NotFound, api.ReasonFamilyNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		code, reason = codes.AlreadyExists, api.ReasonAlreadyExists
	case errors.Is(err, store.ErrTableInUse):
		code, reason = codes.FailedPrecondition, api.ReasonTableInUse
	case errors.Is(err, store.ErrTableDisabled):
		code, reason = codes.FailedPrecondition, api.ReasonTableDisabled
	case errors.Is(err, store.ErrInvalidArgument):
		code, reason = codes.InvalidArgument, api.ReasonInvalidArgument
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
	return withReason(status.New(code, err.Error()), reason)
}

func withReason(st *status.Status, reason string) error {
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: api.ErrorDomain,
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
