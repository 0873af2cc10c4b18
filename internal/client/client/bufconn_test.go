package client

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
	"github.com/dmitrijs2005/tdfs/internal/logging"
	srvgrpc "github.com/dmitrijs2005/tdfs/internal/server/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

type echoHandler struct{}

// Handle answers List with the caller's id and rejects foreign tokens.
func (echoHandler) Handle(ctx context.Context, req dfsproto.Request) (dfsproto.Response, error) {
	userID, token := req.Credentials()
	if token != "tok-"+userID {
		return nil, common.ErrTokenExpired
	}
	if _, ok := req.(dfsproto.ListFileRequest); ok {
		return dfsproto.NewListFileResponse([]string{userID}), nil
	}
	return nil, common.ErrorNotFound
}

func TestGRPCClient_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := srvgrpc.NewGRPCServer("bufnet", logging.NewNopLogger(), echoHandler{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) })

	c, err := NewFileClientService("passthrough:///bufnet", "alice", "tok-alice", dialer)
	require.NoError(t, err)
	defer c.Close()

	ids, err := c.ListFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, ids)

	_, err = c.GetFile(context.Background(), "f1")
	require.ErrorIs(t, err, common.ErrorNotFound)

	expired, err := NewFileClientService("passthrough:///bufnet", "alice", "stale", dialer)
	require.NoError(t, err)
	defer expired.Close()

	_, err = expired.ListFiles(context.Background())
	require.ErrorIs(t, err, common.ErrTokenExpired)
}
