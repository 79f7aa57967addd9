package grpc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/rs/zerolog/log"
	"time"
)

func (v *versionTable) validatePut(msg *api.PutRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if len(msg.Row) == 0 {
		errGrp = append(errGrp, errors.New("row required"))
	}
	if len(msg.Columns) == 0 {
		errGrp = append(errGrp, errors.New("columns required"))
	}
	for i, c := range msg.Columns {
		if c == nil || c.Family == "" {
			errGrp = append(errGrp, errors.Newf("column %d: family required", i))
		}
	}
	return invalid(errGrp)
}

// Put writes every column of the request to one row atomically.
func (v *versionTable) Put(_ context.Context, msg *api.PutRequest) (*api.Empty, error) {
	start := time.Now()
	if err := v.validatePut(msg); err != nil {
		return nil, err
	}

	m := store.NewMutation(msg.Row)
	for _, c := range msg.Columns {
		m.PutAt(c.Family, c.Qualifier, c.Value, c.Timestamp)
	}
	if err := v.store.Mutate(msg.Table, m); err != nil {
		return nil, toStatus(err)
	}

	log.Debug().Str("table", msg.Table).Int("columns", len(msg.Columns)).
		Dur("latency", time.Since(start)).Msg("put")
	return &api.Empty{}, nil
}
