package grpc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/rs/zerolog/log"
	"time"
)

func (v *versionTable) validateDelete(msg *api.DeleteRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if len(msg.Row) == 0 {
		errGrp = append(errGrp, errors.New("row required"))
	}
	for i, c := range msg.Columns {
		if c == nil || c.Family == "" {
			errGrp = append(errGrp, errors.Newf("column %d: family required", i))
			continue
		}
		if _, err := store.ParseDeleteScope(c.Scope); err != nil {
			errGrp = append(errGrp, errors.Newf("column %d: unknown scope %q", i, c.Scope))
		}
	}
	return invalid(errGrp)
}

// Delete removes versions from one row. A request without columns deletes the whole row.
func (v *versionTable) Delete(_ context.Context, msg *api.DeleteRequest) (*api.Empty, error) {
	start := time.Now()
	if err := v.validateDelete(msg); err != nil {
		return nil, err
	}

	m, err := v.deleteMutation(msg)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := v.store.Mutate(msg.Table, m); err != nil {
		return nil, toStatus(err)
	}

	log.Debug().Str("table", msg.Table).Int("columns", len(msg.Columns)).
		Dur("latency", time.Since(start)).Msg("delete")
	return &api.Empty{}, nil
}

func (v *versionTable) deleteMutation(msg *api.DeleteRequest) (*store.Mutation, error) {
	m := store.NewMutation(msg.Row)
	if len(msg.Columns) == 0 {
		desc, err := v.store.DescribeTable(msg.Table)
		if err != nil {
			return nil, err
		}
		for _, f := range desc.Families {
			m.DeleteFamily(f.Name)
		}
		return m, nil
	}

	for _, c := range msg.Columns {
		if c.WholeFamily {
			m.Ops = append(m.Ops, store.ColumnOp{
				Type:      store.OpDeleteFamily,
				Family:    c.Family,
				Timestamp: c.Timestamp,
			})
			continue
		}
		scope, _ := store.ParseDeleteScope(c.Scope)
		m.DeleteAt(c.Family, c.Qualifier, c.Timestamp, scope)
	}
	return m, nil
}
