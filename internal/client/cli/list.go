package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tdfs/internal/common"
)

// list prints one id per line, followed by the local name when the file was
// put from this machine.
func (a *App) list(ctx context.Context) error {
	ids, err := a.client.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}
	for _, id := range ids {
		f, err := a.journal.GetByID(ctx, id)
		switch {
		case err == nil:
			fmt.Fprintf(a.out, "%s\t%s\n", id, f.LocalPath)
		case errors.Is(err, common.ErrorNotFound):
			fmt.Fprintln(a.out, id)
		default:
			return fmt.Errorf("journal: %w", err)
		}
	}
	return nil
}

// pending prints files registered with the server whose upload never
// finished.
func (a *App) pending(ctx context.Context) error {
	files, err := a.journal.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%s\t%s\t%d\n", f.FileID, f.LocalPath, f.FileSize)
	}
	return nil
}
