package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tdfs/internal/client/models"
	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, f *models.LocalFile) error {

	query := `INSERT INTO local_files (file_id, file_name, local_path, sha256, file_size, upload_status)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(file_id) DO UPDATE SET
				file_name = excluded.file_name,
				local_path = excluded.local_path,
				sha256 = excluded.sha256,
				file_size = excluded.file_size,
				upload_status = excluded.upload_status`

	status := f.UploadStatus
	if status == "" {
		status = models.UploadPending
	}

	_, err := r.db.ExecContext(ctx, query, f.FileID, f.FileName, f.LocalPath, f.SHA256, int64(f.FileSize), string(status))
	if err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) MarkUploaded(ctx context.Context, id string) error {

	query := `UPDATE local_files SET upload_status = ? WHERE file_id = ?`
	result, err := r.db.ExecContext(ctx, query, string(models.UploadCompleted), id)
	if err != nil {
		return fmt.Errorf("failed to mark uploaded: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.LocalFile, error) {

	query := `SELECT file_id, file_name, local_path, sha256, file_size, upload_status, created_at
			FROM local_files WHERE file_id = ?`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return f, nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context) ([]*models.LocalFile, error) {

	query := `SELECT file_id, file_name, local_path, sha256, file_size, upload_status, created_at
			FROM local_files WHERE upload_status = ? ORDER BY created_at, file_id`

	rows, err := r.db.QueryContext(ctx, query, string(models.UploadPending))
	if err != nil {
		return nil, fmt.Errorf("error selecting files: %w", err)
	}
	defer rows.Close()

	result := []*models.LocalFile{}
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {

	if _, err := r.db.ExecContext(ctx, `DELETE FROM local_files WHERE file_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFile(s scanner) (*models.LocalFile, error) {
	var (
		f      models.LocalFile
		size   int64
		status string
	)
	if err := s.Scan(&f.FileID, &f.FileName, &f.LocalPath, &f.SHA256, &size, &status, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.FileSize = uint32(size)
	f.UploadStatus = models.UploadStatus(status)
	return &f, nil
}
