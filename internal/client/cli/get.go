package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tdfs/internal/filex"
	"github.com/dmitrijs2005/tdfs/internal/netx"
)

var ErrChecksumMismatch = errors.New("checksum mismatch")

// get writes the decrypted file to out, or to the stored file name in the
// working directory when out is empty.
func (a *App) get(ctx context.Context, fileID, out string) error {
	info, err := a.client.GetFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("get file: %w", err)
	}

	sealed, err := netx.DownloadFromPresignedURL(ctx, a.http, info.AccessPath)
	if err != nil {
		return err
	}

	data, err := info.KeyConfig.Open(sealed)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, info.SHA256) {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, got, info.SHA256)
	}

	if out == "" {
		out = filepath.Base(info.FileName)
	}
	if err := filex.WriteFileAtomic(out, data, 0o600); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s -> %s (%d bytes)\n", fileID, out, len(data))
	return nil
}
