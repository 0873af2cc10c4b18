package client

import (
	"context"

	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
)

type Client interface {
	Close() error
	CreateFile(ctx context.Context, fileName, sha256 string, fileSize uint32) (dfsproto.CreateFileResponse, error)
	GetFile(ctx context.Context, fileID string) (dfsproto.FileInfo, error)
	ListFiles(ctx context.Context) ([]string, error)
	DeleteFile(ctx context.Context, fileID string) (dfsproto.FileInfo, error)
}
