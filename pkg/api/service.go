package api

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "versiontable.VersionTable"

const (
	VersionTable_CreateTable_FullMethodName   = "/versiontable.VersionTable/CreateTable"
	VersionTable_DisableTable_FullMethodName  = "/versiontable.VersionTable/DisableTable"
	VersionTable_EnableTable_FullMethodName   = "/versiontable.VersionTable/EnableTable"
	VersionTable_DeleteTable_FullMethodName   = "/versiontable.VersionTable/DeleteTable"
	VersionTable_ListTables_FullMethodName    = "/versiontable.VersionTable/ListTables"
	VersionTable_DescribeTable_FullMethodName = "/versiontable.VersionTable/DescribeTable"
	VersionTable_Put_FullMethodName           = "/versiontable.VersionTable/Put"
	VersionTable_Get_FullMethodName           = "/versiontable.VersionTable/Get"
	VersionTable_GetRow_FullMethodName        = "/versiontable.VersionTable/GetRow"
	VersionTable_Delete_FullMethodName        = "/versiontable.VersionTable/Delete"
	VersionTable_Scan_FullMethodName          = "/versiontable.VersionTable/Scan"
)

// VersionTableServer is the server API for the VersionTable service. Implementations must
// embed UnimplementedVersionTableServer.
type VersionTableServer interface {
	CreateTable(context.Context, *CreateTableRequest) (*TableDescriptor, error)
	DisableTable(context.Context, *TableRequest) (*Empty, error)
	EnableTable(context.Context, *TableRequest) (*Empty, error)
	DeleteTable(context.Context, *TableRequest) (*Empty, error)
	ListTables(context.Context, *ListTablesRequest) (*ListTablesResponse, error)
	DescribeTable(context.Context, *TableRequest) (*TableDescriptor, error)
	Put(context.Context, *PutRequest) (*Empty, error)
	Get(context.Context, *GetRequest) (*Result, error)
	GetRow(context.Context, *GetRowRequest) (*Result, error)
	Delete(context.Context, *DeleteRequest) (*Empty, error)
	Scan(context.Context, *ScanRequest) (*ScanResponse, error)
	mustEmbedUnimplementedVersionTableServer()
}

// UnimplementedVersionTableServer answers every method with codes.Unimplemented.
type UnimplementedVersionTableServer struct{}

func (UnimplementedVersionTableServer) CreateTable(context.Context, *CreateTableRequest) (*TableDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTable not implemented")
}
func (UnimplementedVersionTableServer) DisableTable(context.Context, *TableRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisableTable not implemented")
}
func (UnimplementedVersionTableServer) EnableTable(context.Context, *TableRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnableTable not implemented")
}
func (UnimplementedVersionTableServer) DeleteTable(context.Context, *TableRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTable not implemented")
}
func (UnimplementedVersionTableServer) ListTables(context.Context, *ListTablesRequest) (*ListTablesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTables not implemented")
}
func (UnimplementedVersionTableServer) DescribeTable(context.Context, *TableRequest) (*TableDescriptor, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DescribeTable not implemented")
}
func (UnimplementedVersionTableServer) Put(context.Context, *PutRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedVersionTableServer) Get(context.Context, *GetRequest) (*Result, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedVersionTableServer) GetRow(context.Context, *GetRowRequest) (*Result, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRow not implemented")
}
func (UnimplementedVersionTableServer) Delete(context.Context, *DeleteRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedVersionTableServer) Scan(context.Context, *ScanRequest) (*ScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Scan not implemented")
}
func (UnimplementedVersionTableServer) mustEmbedUnimplementedVersionTableServer() {}

// RegisterVersionTableServer registers srv on s.
func RegisterVersionTableServer(s grpc.ServiceRegistrar, srv VersionTableServer) {
	s.RegisterService(&VersionTable_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](
	method string,
	call func(VersionTableServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error,
		interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(VersionTableServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(VersionTableServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// VersionTable_ServiceDesc is the grpc.ServiceDesc for the VersionTable service.
var VersionTable_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VersionTableServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTable",
			Handler:    unaryHandler(VersionTable_CreateTable_FullMethodName, VersionTableServer.CreateTable),
		},
		{
			MethodName: "DisableTable",
			Handler:    unaryHandler(VersionTable_DisableTable_FullMethodName, VersionTableServer.DisableTable),
		},
		{
			MethodName: "EnableTable",
			Handler:    unaryHandler(VersionTable_EnableTable_FullMethodName, VersionTableServer.EnableTable),
		},
		{
			MethodName: "DeleteTable",
			Handler:    unaryHandler(VersionTable_DeleteTable_FullMethodName, VersionTableServer.DeleteTable),
		},
		{
			MethodName: "ListTables",
			Handler:    unaryHandler(VersionTable_ListTables_FullMethodName, VersionTableServer.ListTables),
		},
		{
			MethodName: "DescribeTable",
			Handler:    unaryHandler(VersionTable_DescribeTable_FullMethodName, VersionTableServer.DescribeTable),
		},
		{
			MethodName: "Put",
			Handler:    unaryHandler(VersionTable_Put_FullMethodName, VersionTableServer.Put),
		},
		{
			MethodName: "Get",
			Handler:    unaryHandler(VersionTable_Get_FullMethodName, VersionTableServer.Get),
		},
		{
			MethodName: "GetRow",
			Handler:    unaryHandler(VersionTable_GetRow_FullMethodName, VersionTableServer.GetRow),
		},
		{
			MethodName: "Delete",
			Handler:    unaryHandler(VersionTable_Delete_FullMethodName, VersionTableServer.Delete),
		},
		{
			MethodName: "Scan",
			Handler:    unaryHandler(VersionTable_Scan_FullMethodName, VersionTableServer.Scan),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "versiontable.json",
}

// VersionTableClient is the client API for the VersionTable service.
type VersionTableClient interface {
	CreateTable(ctx context.Context, in *CreateTableRequest, opts ...grpc.CallOption) (*TableDescriptor, error)
	DisableTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error)
	EnableTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error)
	DeleteTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error)
	ListTables(ctx context.Context, in *ListTablesRequest, opts ...grpc.CallOption) (*ListTablesResponse, error)
	DescribeTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*TableDescriptor, error)
	Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*Empty, error)
	Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*Result, error)
	GetRow(ctx context.Context, in *GetRowRequest, opts ...grpc.CallOption) (*Result, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error)
	Scan(ctx context.Context, in *ScanRequest, opts ...grpc.CallOption) (*ScanResponse, error)
}

type versionTableClient struct {
	cc grpc.ClientConnInterface
}

// NewVersionTableClient returns a client that encodes every call with the JSON codec.
func NewVersionTableClient(cc grpc.ClientConnInterface) VersionTableClient {
	return &versionTableClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string,
	in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *versionTableClient) CreateTable(ctx context.Context, in *CreateTableRequest, opts ...grpc.CallOption) (*TableDescriptor, error) {
	return invoke[TableDescriptor](ctx, c.cc, VersionTable_CreateTable_FullMethodName, in, opts)
}

func (c *versionTableClient) DisableTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, VersionTable_DisableTable_FullMethodName, in, opts)
}

func (c *versionTableClient) EnableTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, VersionTable_EnableTable_FullMethodName, in, opts)
}

func (c *versionTableClient) DeleteTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, VersionTable_DeleteTable_FullMethodName, in, opts)
}

func (c *versionTableClient) ListTables(ctx context.Context, in *ListTablesRequest, opts ...grpc.CallOption) (*ListTablesResponse, error) {
	return invoke[ListTablesResponse](ctx, c.cc, VersionTable_ListTables_FullMethodName, in, opts)
}

func (c *versionTableClient) DescribeTable(ctx context.Context, in *TableRequest, opts ...grpc.CallOption) (*TableDescriptor, error) {
	return invoke[TableDescriptor](ctx, c.cc, VersionTable_DescribeTable_FullMethodName, in, opts)
}

func (c *versionTableClient) Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, VersionTable_Put_FullMethodName, in, opts)
}

func (c *versionTableClient) Get(ctx context.Context, in *GetRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, VersionTable_Get_FullMethodName, in, opts)
}

func (c *versionTableClient) GetRow(ctx context.Context, in *GetRowRequest, opts ...grpc.CallOption) (*Result, error) {
	return invoke[Result](ctx, c.cc, VersionTable_GetRow_FullMethodName, in, opts)
}

func (c *versionTableClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, VersionTable_Delete_FullMethodName, in, opts)
}

func (c *versionTableClient) Scan(ctx context.Context, in *ScanRequest, opts ...grpc.CallOption) (*ScanResponse, error) {
	return invoke[ScanResponse](ctx, c.cc, VersionTable_Scan_FullMethodName, in, opts)
}
