package cli

import (
	"context"
	"fmt"
)

func (a *App) remove(ctx context.Context, fileID string) error {
	info, err := a.client.DeleteFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if err := a.journal.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	fmt.Fprintf(a.out, "deleted %s (%s)\n", fileID, info.FileName)
	return nil
}
