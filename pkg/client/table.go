package client

import (
	"context"
	"github.com/litetable/versiontable/pkg/api"
)

// Table reads and writes the rows of one table.
type Table struct {
	name string
	api  api.VersionTableClient
}

func (t *Table) Name() string {
	return t.name
}

// Put writes value as a new version of the column.
func (t *Table) Put(ctx context.Context, row []byte, family string, qualifier, value []byte) error {
	return t.PutColumns(ctx, row, Column{Family: family, Qualifier: qualifier, Value: value})
}

// PutAt writes value at an explicit timestamp, replacing any version already there.
func (t *Table) PutAt(ctx context.Context, row []byte, family string, qualifier, value []byte, ts int64) error {
	return t.PutColumns(ctx, row, Column{Family: family, Qualifier: qualifier, Value: value, Timestamp: ts})
}

// PutString writes the UTF-8 bytes of its arguments.
func (t *Table) PutString(ctx context.Context, row, family, qualifier, value string) error {
	return t.Put(ctx, []byte(row), family, []byte(qualifier), []byte(value))
}

// PutColumns writes every column to the row atomically.
func (t *Table) PutColumns(ctx context.Context, row []byte, columns ...Column) error {
	cols := make([]*api.Column, len(columns))
	for i, c := range columns {
		cols[i] = &api.Column{
			Family:    c.Family,
			Qualifier: c.Qualifier,
			Value:     c.Value,
			Timestamp: c.Timestamp,
		}
	}
	_, err := t.api.Put(ctx, &api.PutRequest{
		Table:   t.name,
		Row:     row,
		Columns: cols,
	})
	return translate(err)
}

// Get returns up to maxVersions versions of the column, newest first. A missing row or
// column is an empty result, not an error.
func (t *Table) Get(ctx context.Context, row []byte, family string, qualifier []byte, maxVersions int) ([]Cell, error) {
	resp, err := t.api.Get(ctx, &api.GetRequest{
		Table:       t.name,
		Row:         row,
		Family:      family,
		Qualifier:   qualifier,
		MaxVersions: api.Int32(maxVersions),
	})
	if err != nil {
		return nil, translate(err)
	}
	return cells(resp.Cells), nil
}

// GetStrings is Get with UTF-8 keys and values.
func (t *Table) GetStrings(ctx context.Context, row, family, qualifier string, maxVersions int) ([]string, error) {
	got, err := t.Get(ctx, []byte(row), family, []byte(qualifier), maxVersions)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(got))
	for i, c := range got {
		out[i] = string(c.Value)
	}
	return out, nil
}

// Delete removes versions of the column using the server's default scope.
func (t *Table) Delete(ctx context.Context, row []byte, family string, qualifier []byte) error {
	return t.DeleteAt(ctx, row, family, qualifier, 0, ScopeDefault)
}

// DeleteString is Delete with UTF-8 arguments.
func (t *Table) DeleteString(ctx context.Context, row, family, qualifier string) error {
	return t.Delete(ctx, []byte(row), family, []byte(qualifier))
}

// DeleteAt removes versions at or before ts. A zero ts means now.
func (t *Table) DeleteAt(ctx context.Context, row []byte, family string, qualifier []byte, ts int64, scope Scope) error {
	return t.delete(ctx, row, &api.DeleteColumn{
		Family:    family,
		Qualifier: qualifier,
		Timestamp: ts,
		Scope:     string(scope),
	})
}

// DeleteFamily removes every column of the family from the row.
func (t *Table) DeleteFamily(ctx context.Context, row []byte, family string) error {
	return t.delete(ctx, row, &api.DeleteColumn{
		Family:      family,
		WholeFamily: true,
	})
}

// DeleteRow removes the whole row.
func (t *Table) DeleteRow(ctx context.Context, row []byte) error {
	return t.delete(ctx, row)
}

func (t *Table) delete(ctx context.Context, row []byte, columns ...*api.DeleteColumn) error {
	_, err := t.api.Delete(ctx, &api.DeleteRequest{
		Table:   t.name,
		Row:     row,
		Columns: columns,
	})
	return translate(err)
}

// GetRow returns every visible column of the row.
func (t *Table) GetRow(ctx context.Context, row []byte, opts *GetOptions) (*Result, error) {
	if opts == nil {
		opts = &GetOptions{}
	}
	resp, err := t.api.GetRow(ctx, &api.GetRowRequest{
		Table:        t.name,
		Row:          row,
		Families:     opts.Families,
		MaxVersions:  api.Int32(opts.MaxVersions),
		MinTimestamp: opts.MinTimestamp,
		MaxTimestamp: opts.MaxTimestamp,
	})
	if err != nil {
		return nil, translate(err)
	}
	return &Result{Row: resp.Row, Cells: cells(resp.Cells)}, nil
}

// Scan returns the rows of a key range in ascending key order.
func (t *Table) Scan(ctx context.Context, opts *ScanOptions) ([]*Result, error) {
	if opts == nil {
		opts = &ScanOptions{}
	}
	resp, err := t.api.Scan(ctx, &api.ScanRequest{
		Table:        t.name,
		StartRow:     opts.StartRow,
		StopRow:      opts.StopRow,
		Prefix:       opts.Prefix,
		Families:     opts.Families,
		MaxVersions:  api.Int32(opts.MaxVersions),
		MinTimestamp: opts.MinTimestamp,
		MaxTimestamp: opts.MaxTimestamp,
		Limit:        api.Int32(opts.Limit),
	})
	if err != nil {
		return nil, translate(err)
	}
	out := make([]*Result, len(resp.Results))
	for i, r := range resp.Results {
		out[i] = &Result{Row: r.Row, Cells: cells(r.Cells)}
	}
	return out, nil
}

func cells(in []*api.Cell) []Cell {
	out := make([]Cell, len(in))
	for i, c := range in {
		out[i] = Cell{
			Family:    c.Family,
			Qualifier: c.Qualifier,
			Value:     c.Value,
			Timestamp: c.Timestamp,
		}
	}
	return out
}
