package files

import (
	"context"

	"github.com/dmitrijs2005/tdfs/internal/client/models"
)

// Repository describes the local journal of put files.
type Repository interface {
	// Create records a newly registered file. Recording the same id twice
	// overwrites the earlier record.
	Create(ctx context.Context, f *models.LocalFile) error

	// MarkUploaded flags the upload of id as finished.
	MarkUploaded(ctx context.Context, id string) error

	// GetByID returns the record for id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.LocalFile, error)

	// ListPending returns files whose upload never finished, oldest first.
	ListPending(ctx context.Context) ([]*models.LocalFile, error)

	// Delete drops the record for id. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}
