// Package files stores DFS file metadata in PostgreSQL.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dbx"
	"github.com/dmitrijs2005/tdfs/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the file row. A duplicate id or storage key yields
// common.ErrorAlreadyExists. Collaborators are not written here; see
// AddCollaborator.
func (r *PostgresRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (id, user_id, file_name, sha256, file_size, storage_key, task_id, wrapped_key, key_nonce)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		file.ID, file.UserID, file.FileName, file.SHA256, int64(file.FileSize), file.StorageKey,
		nullString(file.TaskID), file.WrappedKey, file.KeyNonce).Scan(&file.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the file with its collaborators in insertion order.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := `
		SELECT id, user_id, file_name, sha256, file_size, storage_key, task_id, wrapped_key, key_nonce, created_at
		FROM files WHERE id=$1
	`
	var (
		f      models.File
		size   int64
		taskID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.UserID, &f.FileName, &f.SHA256, &size, &f.StorageKey, &taskID, &f.WrappedKey, &f.KeyNonce, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	f.FileSize = uint32(size)
	if taskID.Valid {
		f.TaskID = &taskID.String
	}

	collaborators, err := r.selectCollaborators(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Collaborators = collaborators

	return &f, nil
}

func (r *PostgresRepository) selectCollaborators(ctx context.Context, fileID string) ([]string, error) {
	query := `SELECT user_id FROM file_collaborators WHERE file_id=$1 ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to select collaborators: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		result = append(result, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAccessible returns ids of files owned by or shared with userID,
// oldest first.
func (r *PostgresRepository) ListAccessible(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT f.id FROM files f
		WHERE f.user_id=$1
		   OR EXISTS (SELECT 1 FROM file_collaborators c WHERE c.file_id=f.id AND c.user_id=$1)
		ORDER BY f.created_at, f.id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the file row; collaborators go with it (ON DELETE CASCADE).
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// AddCollaborator appends userID to the file's collaborator list. Adding an
// existing collaborator is a no-op.
func (r *PostgresRepository) AddCollaborator(ctx context.Context, fileID, userID string) error {
	query := `
		INSERT INTO file_collaborators (file_id, user_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1 FROM file_collaborators WHERE file_id=$1
		ON CONFLICT (file_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, fileID, userID); err != nil {
		return fmt.Errorf("failed to add collaborator: %w", err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
