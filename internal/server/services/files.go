// Package services contains server-side business logic. FileService is the
// DFS endpoint: it authenticates each request, dispatches on its tag and
// coordinates metadata (PostgreSQL), key configs (kms) and blobs (S3).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dbx"
	"github.com/dmitrijs2005/tdfs/internal/dfsproto"
	"github.com/dmitrijs2005/tdfs/internal/kms"
	"github.com/dmitrijs2005/tdfs/internal/logging"
	"github.com/dmitrijs2005/tdfs/internal/server/models"
	"github.com/dmitrijs2005/tdfs/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tdfs/internal/server/storage"
	"github.com/google/uuid"
)

const maxFileNameLen = 255

// BlobStore is the object storage used for file content.
type BlobStore interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Authenticator validates the user_id/user_token pair of a request.
type Authenticator interface {
	Authenticate(userID, token string) error
}

type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       BlobStore
	auth        Authenticator
	kek         []byte
	logger      logging.Logger

	newFileID     func() string
	newStorageKey func(userID string) string
}

func NewFileService(db *sql.DB, rm repomanager.RepositoryManager, store BlobStore, auth Authenticator,
	kek []byte, logger logging.Logger) *FileService {
	return &FileService{
		db:            db,
		repomanager:   rm,
		store:         store,
		auth:          auth,
		kek:           kek,
		logger:        logger.With("module", "file_service"),
		newFileID:     uuid.NewString,
		newStorageKey: storage.NewStorageKey,
	}
}

// Handle authenticates req and runs the operation named by its tag. The
// response always carries the same tag as the request.
func (s *FileService) Handle(ctx context.Context, req dfsproto.Request) (dfsproto.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", common.ErrorValidation)
	}

	userID, token := req.Credentials()
	if err := s.auth.Authenticate(userID, token); err != nil {
		s.logger.Warn(ctx, "authentication failed", "type", req.Kind(), "user_id", userID, "error", err)
		return nil, err
	}

	switch r := req.(type) {
	case dfsproto.CreateFileRequest:
		return s.Create(ctx, r)
	case *dfsproto.CreateFileRequest:
		return s.Create(ctx, *r)
	case dfsproto.GetFileRequest:
		return s.Get(ctx, r)
	case *dfsproto.GetFileRequest:
		return s.Get(ctx, *r)
	case dfsproto.ListFileRequest:
		return s.List(ctx, r)
	case *dfsproto.ListFileRequest:
		return s.List(ctx, *r)
	case dfsproto.DeleteFileRequest:
		return s.Delete(ctx, r)
	case *dfsproto.DeleteFileRequest:
		return s.Delete(ctx, *r)
	}
	return nil, fmt.Errorf("%w: unsupported request %T", common.ErrorValidation, req)
}

// Create registers a new file, mints its key config and returns a presigned
// upload URL as the access path. The caller must already be authenticated.
func (s *FileService) Create(ctx context.Context, req dfsproto.CreateFileRequest) (dfsproto.CreateFileResponse, error) {
	var none dfsproto.CreateFileResponse

	name := strings.TrimSpace(req.FileName)
	if name == "" || len(name) > maxFileNameLen {
		return none, fmt.Errorf("%w: file name must be 1..%d bytes", common.ErrorValidation, maxFileNameLen)
	}
	if !common.IsSHA256Hex(req.SHA256) {
		return none, fmt.Errorf("%w: sha256 must be 64 hex characters", common.ErrorValidation)
	}

	fileID := s.newFileID()
	keyConfig := kms.NewAeadConfig([]byte(fileID))

	wrapped, nonce, err := kms.Wrap(s.kek, keyConfig)
	if err != nil {
		return none, fmt.Errorf("wrap key: %w", err)
	}

	f := &models.File{
		ID:         fileID,
		UserID:     req.UserID,
		FileName:   name,
		SHA256:     strings.ToLower(req.SHA256),
		FileSize:   req.FileSize,
		StorageKey: s.newStorageKey(req.UserID),
		WrappedKey: wrapped,
		KeyNonce:   nonce,
	}

	// presign first: it has no side effects, so a failure leaves nothing behind
	url, err := s.store.PresignPut(ctx, f.StorageKey)
	if err != nil {
		return none, fmt.Errorf("presign upload: %w", err)
	}

	if err := s.repomanager.Files(s.db).Create(ctx, f); err != nil {
		return none, fmt.Errorf("error creating file: %w", err)
	}

	s.logger.Info(ctx, "file created", "file_id", fileID, "user_id", req.UserID, "size", req.FileSize)
	return dfsproto.NewCreateFileResponse(fileID, url, keyConfig), nil
}

// Get returns file info with a presigned download URL. Files the caller can
// not read are reported as not found.
func (s *FileService) Get(ctx context.Context, req dfsproto.GetFileRequest) (dfsproto.GetFileResponse, error) {
	var none dfsproto.GetFileResponse

	f, err := s.repomanager.Files(s.db).GetByID(ctx, req.FileID)
	if err != nil {
		return none, err
	}
	if !f.CanRead(req.UserID) {
		return none, common.ErrorNotFound
	}

	url, err := s.store.PresignGet(ctx, f.StorageKey)
	if err != nil {
		return none, fmt.Errorf("presign download: %w", err)
	}

	info, err := s.fileInfo(f, url)
	if err != nil {
		return none, err
	}
	return dfsproto.NewGetFileResponse(info), nil
}

// List returns the ids of files owned by or shared with the caller.
func (s *FileService) List(ctx context.Context, req dfsproto.ListFileRequest) (dfsproto.ListFileResponse, error) {
	ids, err := s.repomanager.Files(s.db).ListAccessible(ctx, req.UserID)
	if err != nil {
		return dfsproto.ListFileResponse{}, fmt.Errorf("error listing files: %w", err)
	}
	return dfsproto.NewListFileResponse(ids), nil
}

// Delete removes a file owned by the caller and returns its last known info.
// The access path of the returned info is the former storage key.
// Collaborators get common.ErrorForbidden.
func (s *FileService) Delete(ctx context.Context, req dfsproto.DeleteFileRequest) (dfsproto.DeleteFileResponse, error) {
	var (
		none dfsproto.DeleteFileResponse
		f    *models.File
		info dfsproto.FileInfo
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)

		var err error
		f, err = repo.GetByID(ctx, req.FileID)
		if err != nil {
			return err
		}
		if err := checkOwner(f, req.UserID); err != nil {
			return err
		}
		// built before the delete so an unreadable key aborts the transaction
		if info, err = s.fileInfo(f, f.StorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, req.FileID)
	})
	if err != nil {
		return none, err
	}

	if err := s.store.Delete(ctx, f.StorageKey); err != nil {
		// metadata is gone already; the orphaned object is only logged
		s.logger.Warn(ctx, "blob delete failed", "file_id", f.ID, "storage_key", f.StorageKey, "error", err)
	}

	s.logger.Info(ctx, "file deleted", "file_id", f.ID, "user_id", req.UserID)
	return dfsproto.NewDeleteFileResponse(info), nil
}

// Share appends collaboratorID to a file owned by ownerID.
func (s *FileService) Share(ctx context.Context, fileID, ownerID, ownerToken, collaboratorID string) error {
	if err := s.auth.Authenticate(ownerID, ownerToken); err != nil {
		return err
	}
	if collaboratorID == "" || collaboratorID == ownerID {
		return fmt.Errorf("%w: invalid collaborator", common.ErrorValidation)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Files(tx)

		f, err := repo.GetByID(ctx, fileID)
		if err != nil {
			return err
		}
		if err := checkOwner(f, ownerID); err != nil {
			return err
		}
		return repo.AddCollaborator(ctx, fileID, collaboratorID)
	})
}

func checkOwner(f *models.File, userID string) error {
	if f.UserID == userID {
		return nil
	}
	if f.CanRead(userID) {
		return common.ErrorForbidden
	}
	return common.ErrorNotFound
}

func (s *FileService) fileInfo(f *models.File, accessPath string) (dfsproto.FileInfo, error) {
	keyConfig, err := kms.Unwrap(s.kek, f.WrappedKey, f.KeyNonce)
	if err != nil {
		return dfsproto.FileInfo{}, fmt.Errorf("%w: unwrap key for %s: %v", common.ErrorInternal, f.ID, err)
	}

	collaborators := f.Collaborators
	if collaborators == nil {
		collaborators = []string{}
	}

	return dfsproto.FileInfo{
		UserID:           f.UserID,
		FileName:         f.FileName,
		SHA256:           f.SHA256,
		FileSize:         f.FileSize,
		AccessPath:       accessPath,
		TaskID:           f.TaskID,
		CollaboratorList: collaborators,
		KeyConfig:        keyConfig,
	}, nil
}

// IsClientError reports whether err is caused by the request rather than
// by the server.
func IsClientError(err error) bool {
	for _, target := range []error{
		common.ErrorValidation, common.ErrorNotFound, common.ErrorForbidden, common.ErrorUnauthorized,
		common.ErrInvalidToken, common.ErrTokenExpired, common.ErrorAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
