package files

import (
	"context"

	"github.com/dmitrijs2005/tdfs/internal/server/models"
)

// Repository persists file metadata and collaborator lists.
type Repository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id string) (*models.File, error)
	ListAccessible(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, id string) error
	AddCollaborator(ctx context.Context, fileID, userID string) error
}
