package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/tdfs/internal/client/models"
	"github.com/dmitrijs2005/tdfs/internal/netx"
)

func (a *App) put(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if int64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%s: file is larger than %d bytes", path, uint32(math.MaxUint32))
	}

	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])
	name := filepath.Base(path)

	resp, err := a.client.CreateFile(ctx, name, digest, uint32(len(data)))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := a.journal.Create(ctx, &models.LocalFile{
		FileID:       resp.FileID,
		FileName:     name,
		LocalPath:    abs,
		SHA256:       digest,
		FileSize:     uint32(len(data)),
		UploadStatus: models.UploadPending,
	}); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	sealed, err := resp.KeyConfig.Seal(data)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, a.http, resp.AccessPath, sealed); err != nil {
		return fmt.Errorf("upload %s: %w", resp.FileID, err)
	}

	if err := a.journal.MarkUploaded(ctx, resp.FileID); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	fmt.Fprintln(a.out, resp.FileID)
	return nil
}
