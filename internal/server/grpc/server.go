// Package grpc exposes the DFS endpoint over gRPC. The service has a single
// unary method carrying JSON encoded dfsproto messages.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
	"github.com/dmitrijs2005/tdfs/internal/logging"
	"github.com/dmitrijs2005/tdfs/internal/metrics"
	pb "github.com/dmitrijs2005/tdfs/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Handler executes a decoded DFS request.
type Handler interface {
	Handle(ctx context.Context, req dfsproto.Request) (dfsproto.Response, error)
}

type GRPCServer struct {
	address string
	files   Handler
	metrics *metrics.Metrics
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, files Handler, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		files:   files,
		metrics: m,
	}
}

// Call decodes the request body, runs it and encodes the response.
func (s *GRPCServer) Call(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	req, err := dfsproto.DecodeRequest(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := s.files.Handle(ctx, req)
	if err != nil {
		st := toStatus(err)
		if status.Code(st) == codes.Internal {
			s.logger.Error(ctx, "handle request", "type", req.Kind(), "error", err)
		}
		return nil, st
	}

	out, err := dfsproto.EncodeResponse(resp)
	if err != nil {
		s.logger.Error(ctx, "encode response", "type", req.Kind(), "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}
	return wrapperspb.Bytes(out), nil
}

// NewServer builds a grpc.Server with the logging and metrics interceptors
// and the file service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{s.loggingInterceptor}
	if s.metrics != nil {
		interceptors = append(interceptors, s.metricsInterceptor)
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(interceptors...))

	srv := grpc.NewServer(opts...)
	pb.RegisterFileServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
