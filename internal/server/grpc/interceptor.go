package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const unknownKind = "unknown"

// requestKind peeks at the message tag for log and metric labels.
func requestKind(req any) string {
	in, ok := req.(*wrapperspb.BytesValue)
	if !ok {
		return unknownKind
	}
	kind, err := dfsproto.PeekKind(in.GetValue())
	if err != nil {
		return unknownKind
	}
	return kind.String()
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	kind := requestKind(req)

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "type", kind, "code", code.String(), "elapsed", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "request served", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "request failed", append(args, "error", err)...)
	default:
		s.logger.Warn(ctx, "request rejected", append(args, "error", err)...)
	}
	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.metrics.ObserveRequest(requestKind(req), status.Code(err).String(), time.Since(start))
	return resp, err
}
