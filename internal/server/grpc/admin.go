package grpc

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/rs/zerolog/log"
)

func (v *versionTable) validateCreateTable(msg *api.CreateTableRequest) error {
	var errGrp []error
	if msg.Table == "" {
		errGrp = append(errGrp, errors.New("table required"))
	}
	if len(msg.Families) == 0 {
		errGrp = append(errGrp, errors.New("family required"))
	}
	return invalid(errGrp)
}

func (v *versionTable) CreateTable(_ context.Context, msg *api.CreateTableRequest) (*api.TableDescriptor, error) {
	if err := v.validateCreateTable(msg); err != nil {
		return nil, err
	}

	desc, err := v.store.CreateTable(msg.Table, toStoreFamilies(msg.Families)...)
	if err != nil {
		return nil, toStatus(err)
	}
	log.Info().Str("table", desc.Name).Str("id", desc.ID).Msg("table created")
	return toAPIDescriptor(desc), nil
}

func validateTableRequest(msg *api.TableRequest) error {
	if msg.Table == "" {
		return invalid([]error{errors.New("table required")})
	}
	return nil
}

func (v *versionTable) DisableTable(_ context.Context, msg *api.TableRequest) (*api.Empty, error) {
	if err := validateTableRequest(msg); err != nil {
		return nil, err
	}
	if err := v.store.DisableTable(msg.Table); err != nil {
		return nil, toStatus(err)
	}
	log.Info().Str("table", msg.Table).Msg("table disabled")
	return &api.Empty{}, nil
}

func (v *versionTable) EnableTable(_ context.Context, msg *api.TableRequest) (*api.Empty, error) {
	if err := validateTableRequest(msg); err != nil {
		return nil, err
	}
	if err := v.store.EnableTable(msg.Table); err != nil {
		return nil, toStatus(err)
	}
	log.Info().Str("table", msg.Table).Msg("table enabled")
	return &api.Empty{}, nil
}

func (v *versionTable) DeleteTable(_ context.Context, msg *api.TableRequest) (*api.Empty, error) {
	if err := validateTableRequest(msg); err != nil {
		return nil, err
	}
	if err := v.store.DeleteTable(msg.Table); err != nil {
		return nil, toStatus(err)
	}
	log.Info().Str("table", msg.Table).Msg("table deleted")
	return &api.Empty{}, nil
}

func (v *versionTable) DescribeTable(_ context.Context, msg *api.TableRequest) (*api.TableDescriptor, error) {
	if err := validateTableRequest(msg); err != nil {
		return nil, err
	}
	desc, err := v.store.DescribeTable(msg.Table)
	if err != nil {
		return nil, toStatus(err)
	}
	return toAPIDescriptor(desc), nil
}

func (v *versionTable) ListTables(context.Context, *api.ListTablesRequest) (*api.ListTablesResponse, error) {
	tables := v.store.ListTables()
	resp := &api.ListTablesResponse{
		Tables: make([]*api.TableDescriptor, len(tables)),
	}
	for i, d := range tables {
		resp.Tables[i] = toAPIDescriptor(d)
	}
	return resp, nil
}
