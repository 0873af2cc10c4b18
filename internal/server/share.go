package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/tdfs/internal/logging"
	"github.com/dmitrijs2005/tdfs/internal/server/auth"
	"github.com/dmitrijs2005/tdfs/internal/server/config"
	"github.com/dmitrijs2005/tdfs/internal/server/repositories/repomanager"
)

// shareTokenValidity is the lifetime of the owner token minted for one grant.
const shareTokenValidity = time.Minute

type sharer interface {
	Share(ctx context.Context, fileID, ownerID, ownerToken, collaboratorID string) error
}

// ShareFile grants collaboratorID read access to fileID on behalf of its
// owner. A short-lived owner token is minted from the server secret, so the
// grant goes through the same authentication and ownership checks as a
// client request.
func ShareFile(ctx context.Context, c *config.Config, fileID, ownerID, collaboratorID string) error {
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelWarn)

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	fs, err := newFileService(ctx, c, db, repomanager.NewPostgresRepositoryManager(), logger)
	if err != nil {
		return err
	}
	return shareFile(ctx, fs, c.SecretKey, fileID, ownerID, collaboratorID)
}

func shareFile(ctx context.Context, s sharer, secret, fileID, ownerID, collaboratorID string) error {
	token, err := auth.GenerateToken(ownerID, []byte(secret), shareTokenValidity)
	if err != nil {
		return fmt.Errorf("mint owner token: %w", err)
	}
	return s.Share(ctx, fileID, ownerID, token, collaboratorID)
}
