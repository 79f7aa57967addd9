package grpc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/rs/zerolog/log"
	"time"
)

func (v *versionTable) validateGet(msg *api.GetRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if len(msg.Row) == 0 {
		errGrp = append(errGrp, errors.New("row required"))
	}
	if msg.Family == "" {
		errGrp = append(errGrp, errors.New("family required"))
	}
	if msg.MaxVersions < 0 {
		errGrp = append(errGrp, errors.New("maxVersions cannot be negative"))
	}
	return invalid(errGrp)
}

// Get returns up to MaxVersions versions of one column, newest first.
func (v *versionTable) Get(_ context.Context, msg *api.GetRequest) (*api.Result, error) {
	start := time.Now()
	if err := v.validateGet(msg); err != nil {
		return nil, err
	}

	cells, err := v.store.Get(msg.Table, msg.Row, msg.Family, msg.Qualifier, int(msg.MaxVersions))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Debug().Str("table", msg.Table).Int("cells", len(cells)).
		Dur("latency", time.Since(start)).Msg("get")
	return &api.Result{
		Row:   msg.Row,
		Cells: toAPICells(cells),
	}, nil
}

func (v *versionTable) validateGetRow(msg *api.GetRowRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if len(msg.Row) == 0 {
		errGrp = append(errGrp, errors.New("row required"))
	}
	errGrp = append(errGrp, validateBounds(msg.MaxVersions, msg.MinTimestamp, msg.MaxTimestamp)...)
	return invalid(errGrp)
}

func validateBounds(maxVersions int32, minTimestamp, maxTimestamp int64) []error {
	var errGrp []error
	if maxVersions < 0 {
		errGrp = append(errGrp, errors.New("maxVersions cannot be negative"))
	}
	if minTimestamp < 0 || maxTimestamp < 0 {
		errGrp = append(errGrp, errors.New("timestamps cannot be negative"))
	}
	if maxTimestamp > 0 && minTimestamp >= maxTimestamp {
		errGrp = append(errGrp, errors.New("minTimestamp must be before maxTimestamp"))
	}
	return errGrp
}

// GetRow returns every visible column of a row.
func (v *versionTable) GetRow(_ context.Context, msg *api.GetRowRequest) (*api.Result, error) {
	start := time.Now()
	if err := v.validateGetRow(msg); err != nil {
		return nil, err
	}

	result, err := v.store.GetRow(msg.Table, msg.Row, &store.GetOptions{
		Families:     msg.Families,
		MaxVersions:  int(msg.MaxVersions),
		MinTimestamp: msg.MinTimestamp,
		MaxTimestamp: msg.MaxTimestamp,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	log.Debug().Str("table", msg.Table).Dur("latency", time.Since(start)).Msg("get row")
	return toAPIResult(result), nil
}

func (v *versionTable) validateScan(msg *api.ScanRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if msg.Limit < 0 {
		errGrp = append(errGrp, errors.New("limit cannot be negative"))
	}
	errGrp = append(errGrp, validateBounds(msg.MaxVersions, msg.MinTimestamp, msg.MaxTimestamp)...)
	return invalid(errGrp)
}

// Scan returns the rows of a key range in ascending key order.
func (v *versionTable) Scan(ctx context.Context, msg *api.ScanRequest) (*api.ScanResponse, error) {
	start := time.Now()
	if err := v.validateScan(msg); err != nil {
		return nil, err
	}

	results, err := v.store.Scan(ctx, msg.Table, &store.ScanOptions{
		StartRow:     msg.StartRow,
		StopRow:      msg.StopRow,
		Prefix:       msg.Prefix,
		Families:     msg.Families,
		MaxVersions:  int(msg.MaxVersions),
		MinTimestamp: msg.MinTimestamp,
		MaxTimestamp: msg.MaxTimestamp,
		Limit:        int(msg.Limit),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &api.ScanResponse{
		Results: make([]*api.Result, len(results)),
	}
	for i, r := range results {
		resp.Results[i] = toAPIResult(r)
	}
	log.Debug().Str("table", msg.Table).Int("rows", len(results)).
		Dur("latency", time.Since(start)).Msg("scan")
	return resp, nil
}
