package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
	pb "github.com/dmitrijs2005/tdfs/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const tokenExpiredMessage = "token expired"

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FileServiceClient
	userID      string
	userToken   string
}

func NewFileClientService(endpointURL, userID, userToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, userID: userID, userToken: userToken}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFileServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) CreateFile(ctx context.Context, fileName, sha256 string, fileSize uint32) (dfsproto.CreateFileResponse, error) {
	resp, err := s.call(ctx, dfsproto.NewCreateFileRequest(fileName, sha256, fileSize, s.userID, s.userToken))
	if err != nil {
		return dfsproto.CreateFileResponse{}, err
	}
	return resp.(dfsproto.CreateFileResponse), nil
}

func (s *GRPCClient) GetFile(ctx context.Context, fileID string) (dfsproto.FileInfo, error) {
	resp, err := s.call(ctx, dfsproto.NewGetFileRequest(fileID, s.userID, s.userToken))
	if err != nil {
		return dfsproto.FileInfo{}, err
	}
	return resp.(dfsproto.GetFileResponse).FileInfo, nil
}

func (s *GRPCClient) ListFiles(ctx context.Context) ([]string, error) {
	resp, err := s.call(ctx, dfsproto.NewListFileRequest(s.userID, s.userToken))
	if err != nil {
		return nil, err
	}
	return resp.(dfsproto.ListFileResponse).List, nil
}

func (s *GRPCClient) DeleteFile(ctx context.Context, fileID string) (dfsproto.FileInfo, error) {
	resp, err := s.call(ctx, dfsproto.NewDeleteFileRequest(fileID, s.userID, s.userToken))
	if err != nil {
		return dfsproto.FileInfo{}, err
	}
	return resp.(dfsproto.DeleteFileResponse).FileInfo, nil
}

// call sends req and returns a response guaranteed to carry req's tag.
func (s *GRPCClient) call(ctx context.Context, req dfsproto.Request) (dfsproto.Response, error) {
	body, err := dfsproto.EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	out, err := s.client.Call(ctx, wrapperspb.Bytes(body))
	if err != nil {
		return nil, s.mapError(err)
	}

	resp, err := dfsproto.DecodeResponse(out.GetValue())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if resp.Kind() != req.Kind() {
		return nil, fmt.Errorf("%w: %s reply to %s request", ErrUnexpectedResponse, resp.Kind(), req.Kind())
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == tokenExpiredMessage {
			return common.ErrTokenExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
