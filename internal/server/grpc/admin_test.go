package grpc

import (
	"context"
	"github.com/litetable/versiontable/internal/store"
	"github.com/litetable/versiontable/pkg/api"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"testing"
	"time"
)

func TestVersionTable_CreateTable(t *testing.T) {
	created := time.Unix(1700000000, 0)

	tests := map[string]struct {
		request         *api.CreateTableRequest
		mockSetup       func(m *MocktableStore)
		expectedCode    codes.Code
		expectedMessage string
	}{
		"missing table and family": {
			request:         &api.CreateTableRequest{},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "table required\nfamily required",
		},
		"table exists": {
			request: &api.CreateTableRequest{
				Table:    "users",
				Families: []*api.FamilySpec{{Name: "info"}},
			},
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().
					CreateTable("users", store.FamilySpec{Name: "info"}).
					Return(store.TableDescriptor{}, store.ErrAlreadyExists)
			},
			expectedCode:    codes.AlreadyExists,
			expectedMessage: "table already exists",
		},
		"successful request": {
			request: &api.CreateTableRequest{
				Table: "users",
				Families: []*api.FamilySpec{
					{Name: "info", MaxVersions: 10},
					{Name: "session", TTLSeconds: 60},
				},
			},
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().
					CreateTable("users",
						store.FamilySpec{Name: "info", MaxVersions: 10},
						store.FamilySpec{Name: "session", TTL: time.Minute},
					).
					Return(store.TableDescriptor{
						ID:   "id-1",
						Name: "users",
						Families: []store.FamilySpec{
							{Name: "info", MaxVersions: 10},
							{Name: "session", TTL: time.Minute},
						},
						Enabled:   true,
						CreatedAt: created,
					}, nil)
			},
			expectedCode: codes.OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			ctrl := gomock.NewController(t)
			mockStore := NewMocktableStore(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockStore)
			}

			svc := &versionTable{store: mockStore}
			resp, err := svc.CreateTable(context.Background(), tc.request)

			if tc.expectedCode != codes.OK {
				requireStatus(t, err, tc.expectedCode, tc.expectedMessage)
				req.Nil(resp)
				return
			}
			req.NoError(err)
			req.Equal(&api.TableDescriptor{
				ID:   "id-1",
				Name: "users",
				Families: []*api.FamilySpec{
					{Name: "info", MaxVersions: 10},
					{Name: "session", TTLSeconds: 60},
				},
				Enabled:       true,
				CreatedAtUnix: created.Unix(),
			}, resp)
		})
	}
}

func TestVersionTable_TableAdmin(t *testing.T) {
	type call func(svc *versionTable, msg *api.TableRequest) error

	disable := func(svc *versionTable, msg *api.TableRequest) error {
		_, err := svc.DisableTable(context.Background(), msg)
		return err
	}
	enable := func(svc *versionTable, msg *api.TableRequest) error {
		_, err := svc.EnableTable(context.Background(), msg)
		return err
	}
	drop := func(svc *versionTable, msg *api.TableRequest) error {
		_, err := svc.DeleteTable(context.Background(), msg)
		return err
	}

	tests := map[string]struct {
		call         call
		table        string
		mockSetup    func(m *MocktableStore)
		expectedCode codes.Code
	}{
		"disable without table": {
			call:         disable,
			expectedCode: codes.InvalidArgument,
		},
		"disable": {
			call:  disable,
			table: "users",
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().DisableTable("users").Return(nil)
			},
			expectedCode: codes.OK,
		},
		"enable missing table": {
			call:  enable,
			table: "users",
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().EnableTable("users").Return(store.ErrTableNotFound)
			},
			expectedCode: codes.NotFound,
		},
		"delete enabled table": {
			call:  drop,
			table: "users",
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().DeleteTable("users").Return(store.ErrTableInUse)
			},
			expectedCode: codes.FailedPrecondition,
		},
		"delete": {
			call:  drop,
			table: "users",
			mockSetup: func(m *MocktableStore) {
				m.EXPECT().DeleteTable("users").Return(nil)
			},
			expectedCode: codes.OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStore := NewMocktableStore(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockStore)
			}

			err := tc.call(&versionTable{store: mockStore}, &api.TableRequest{Table: tc.table})
			if tc.expectedCode == codes.OK {
				require.NoError(t, err)
				return
			}
			requireStatus(t, err, tc.expectedCode, "")
		})
	}
}

func TestVersionTable_ListTables(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockStore := NewMocktableStore(ctrl)

	mockStore.EXPECT().ListTables().Return([]store.TableDescriptor{
		{Name: "a", Families: []store.FamilySpec{{Name: "f"}}},
		{Name: "b", Families: []store.FamilySpec{{Name: "g"}}},
	})

	svc := &versionTable{store: mockStore}
	resp, err := svc.ListTables(context.Background(), &api.ListTablesRequest{})
	req.NoError(err)
	req.Len(resp.Tables, 2)
	req.Equal("a", resp.Tables[0].Name)
	req.Equal("g", resp.Tables[1].Families[0].Name)
}

func TestVersionTable_DescribeTable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockStore := NewMocktableStore(ctrl)

	mockStore.EXPECT().DescribeTable("users").Return(store.TableDescriptor{
		Name:    "users",
		Enabled: false,
	}, nil)

	svc := &versionTable{store: mockStore}
	resp, err := svc.DescribeTable(context.Background(), &api.TableRequest{Table: "users"})
	req.NoError(err)
	req.Equal("users", resp.Name)
	req.False(resp.Enabled)
}
