// Package proto declares the tdfs.v1.FileService gRPC contract. The service
// has one unary method whose request and response bodies are JSON encoded
// dfsproto messages wrapped in google.protobuf.BytesValue, so no generated
// message types are needed.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "tdfs.v1.FileService"
	// CallMethod is the full method name of the single DFS RPC. Request and
	// response bodies are JSON encoded dfsproto messages.
	CallMethod = "/" + ServiceName + "/Call"
)

// FileServiceServer is the server API of tdfs.v1.FileService.
type FileServiceServer interface {
	Call(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// FileServiceDesc describes tdfs.v1.FileService for grpc.Server.RegisterService.
var FileServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Call",
			Handler:    callHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tdfs/v1/file_service.proto",
}

// RegisterFileServiceServer registers srv on s.
func RegisterFileServiceServer(s grpc.ServiceRegistrar, srv FileServiceServer) {
	s.RegisterService(&FileServiceDesc, srv)
}

func callHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileServiceServer).Call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CallMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileServiceServer).Call(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// FileServiceClient is the client API of tdfs.v1.FileService.
type FileServiceClient interface {
	Call(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type fileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFileServiceClient(cc grpc.ClientConnInterface) FileServiceClient {
	return &fileServiceClient{cc}
}

func (c *fileServiceClient) Call(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, CallMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
