package grpc

import (
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"time"
)

func toStoreFamilies(families []*api.FamilySpec) []store.FamilySpec {
	out := make([]store.FamilySpec, 0, len(families))
	for _, f := range families {
		if f == nil {
			continue
		}
		out = append(out, store.FamilySpec{
			Name:        f.Name,
			MaxVersions: int(f.MaxVersions),
			TTL:         time.Duration(f.TTLSeconds) * time.Second,
		})
	}
	return out
}

func toAPIDescriptor(d store.TableDescriptor) *api.TableDescriptor {
	families := make([]*api.FamilySpec, len(d.Families))
	for i, f := range d.Families {
		families[i] = &api.FamilySpec{
			Name:        f.Name,
			MaxVersions: api.Int32(f.MaxVersions),
			TTLSeconds:  int64(f.TTL / time.Second),
		}
	}
	return &api.TableDescriptor{
		ID:            d.ID,
		Name:          d.Name,
		Families:      families,
		Enabled:       d.Enabled,
		CreatedAtUnix: d.CreatedAt.Unix(),
	}
}

func toAPICells(cells []store.Cell) []*api.Cell {
	out := make([]*api.Cell, len(cells))
	for i, c := range cells {
		out[i] = &api.Cell{
			Family:    c.Family,
			Qualifier: c.Qualifier,
			Value:     c.Value,
			Timestamp: c.Timestamp,
		}
	}
	return out
}

func toAPIResult(r *store.Result) *api.Result {
	if r == nil {
		return &api.Result{Cells: []*api.Cell{}}
	}
	return &api.Result{
		Row:   r.Row,
		Cells: toAPICells(r.Cells),
	}
}
