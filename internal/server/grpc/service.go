package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Service descriptor and stubs for listbot.Lists (see lists.proto). The
// messages are protobuf well-known types, so no generated message code is
// needed.

const (
	ListsExecuteMethod       = "/" + ServiceName + "/Execute"
	ListsListSummariesMethod = "/" + ServiceName + "/ListSummaries"
)

// ListsServer is the server API for the listbot.Lists service.
type ListsServer interface {
	Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListSummaries(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error)
}

// ListsClient is the client API for the listbot.Lists service.
type ListsClient interface {
	Execute(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSummaries(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type listsClient struct {
	cc grpc.ClientConnInterface
}

func NewListsClient(cc grpc.ClientConnInterface) ListsClient {
	return &listsClient{cc: cc}
}

func (c *listsClient) Execute(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListsExecuteMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *listsClient) ListSummaries(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListsListSummariesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterListsServer attaches srv to the gRPC server s.
func RegisterListsServer(s grpc.ServiceRegistrar, srv ListsServer) {
	s.RegisterService(&listsServiceDesc, srv)
}

func executeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ListsServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListsExecuteMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ListsServer).Execute(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listSummariesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ListsServer).ListSummaries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListsListSummariesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ListsServer).ListSummaries(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

var listsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ListsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Execute", Handler: executeHandler},
		{MethodName: "ListSummaries", Handler: listSummariesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lists.proto",
}
