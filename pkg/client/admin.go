package client

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/pkg/api"
	"math"
	"time"
)

// Admin manages the table catalog.
type Admin struct {
	api api.VersionTableClient
}

// CreateTable creates an enabled table with the given families.
func (a *Admin) CreateTable(ctx context.Context, name string, families ...Family) (*TableInfo, error) {
	specs := make([]*api.FamilySpec, len(families))
	for i, f := range families {
		if f.MaxVersions > math.MaxInt32 {
			return nil, errors.Wrapf(ErrInvalidArgument, "family %s: max versions %d out of range", f.Name, f.MaxVersions)
		}
		specs[i] = &api.FamilySpec{
			Name:        f.Name,
			MaxVersions: api.Int32(f.MaxVersions),
			TTLSeconds:  int64(f.TTL / time.Second),
		}
	}
	desc, err := a.api.CreateTable(ctx, &api.CreateTableRequest{
		Table:    name,
		Families: specs,
	})
	if err != nil {
		return nil, translate(err)
	}
	return tableInfo(desc), nil
}

// DisableTable takes the table offline. Disabling a disabled table is a no-op.
func (a *Admin) DisableTable(ctx context.Context, name string) error {
	_, err := a.api.DisableTable(ctx, &api.TableRequest{Table: name})
	return translate(err)
}

func (a *Admin) EnableTable(ctx context.Context, name string) error {
	_, err := a.api.EnableTable(ctx, &api.TableRequest{Table: name})
	return translate(err)
}

// DeleteTable drops a disabled table and all of its data.
func (a *Admin) DeleteTable(ctx context.Context, name string) error {
	_, err := a.api.DeleteTable(ctx, &api.TableRequest{Table: name})
	return translate(err)
}

func (a *Admin) DescribeTable(ctx context.Context, name string) (*TableInfo, error) {
	desc, err := a.api.DescribeTable(ctx, &api.TableRequest{Table: name})
	if err != nil {
		return nil, translate(err)
	}
	return tableInfo(desc), nil
}

func (a *Admin) TableExists(ctx context.Context, name string) (bool, error) {
	_, err := a.DescribeTable(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTableNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (a *Admin) IsTableEnabled(ctx context.Context, name string) (bool, error) {
	info, err := a.DescribeTable(ctx, name)
	if err != nil {
		return false, err
	}
	return info.Enabled, nil
}

// ListTables returns every table ordered by name.
func (a *Admin) ListTables(ctx context.Context) ([]*TableInfo, error) {
	resp, err := a.api.ListTables(ctx, &api.ListTablesRequest{})
	if err != nil {
		return nil, translate(err)
	}
	out := make([]*TableInfo, len(resp.Tables))
	for i, d := range resp.Tables {
		out[i] = tableInfo(d)
	}
	return out, nil
}

func tableInfo(d *api.TableDescriptor) *TableInfo {
	families := make([]Family, len(d.Families))
	for i, f := range d.Families {
		families[i] = Family{
			Name:        f.Name,
			MaxVersions: int(f.MaxVersions),
			TTL:         time.Duration(f.TTLSeconds) * time.Second,
		}
	}
	return &TableInfo{
		ID:        d.ID,
		Name:      d.Name,
		Families:  families,
		Enabled:   d.Enabled,
		CreatedAt: time.Unix(d.CreatedAtUnix, 0),
	}
}
