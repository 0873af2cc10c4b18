package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/dbx"
	"github.com/dmitrijs2005/tdfs/internal/kms"
	"github.com/dmitrijs2005/tdfs/internal/logging"
	"github.com/dmitrijs2005/tdfs/internal/server/models"
	"github.com/dmitrijs2005/tdfs/internal/server/repositories/files"
	"github.com/stretchr/testify/require"
)

var testKEK = kms.DeriveKEK([]byte("test-secret"), []byte("test-salt"))

// -------- fake repository --------

type memRepo struct {
	mu      sync.Mutex
	files   map[string]*models.File
	order   []string
	failErr error
}

func newMemRepo() *memRepo {
	return &memRepo{files: map[string]*models.File{}}
}

func (r *memRepo) Create(ctx context.Context, f *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.files[f.ID]; ok {
		return common.ErrorAlreadyExists
	}
	cp := *f
	r.files[f.ID] = &cp
	r.order = append(r.order, f.ID)
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	f, ok := r.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *f
	cp.Collaborators = append([]string{}, f.Collaborators...)
	return &cp, nil
}

func (r *memRepo) ListAccessible(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	out := []string{}
	for _, id := range r.order {
		if f, ok := r.files[id]; ok && f.CanRead(userID) {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.files, id)
	return nil
}

func (r *memRepo) AddCollaborator(ctx context.Context, fileID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.files[fileID]
	if !ok {
		return common.ErrorNotFound
	}
	for _, c := range f.Collaborators {
		if c == userID {
			return nil
		}
	}
	f.Collaborators = append(f.Collaborators, userID)
	return nil
}

type fakeRM struct {
	repo *memRepo
}

func (m *fakeRM) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRM) Files(db dbx.DBTX) files.Repository           { return m.repo }

// -------- fake store / auth --------

type fakeStore struct {
	mu       sync.Mutex
	deleted  []string
	putErr   error
	getErr   error
	delErr   error
	presigns int
}

func (s *fakeStore) PresignPut(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presigns++
	if s.putErr != nil {
		return "", s.putErr
	}
	return "https://s3.test/put/" + key, nil
}

func (s *fakeStore) PresignGet(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return "https://s3.test/get/" + key, nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, key)
	return s.delErr
}

// fakeAuth accepts token "tok-<user>" for <user>.
type fakeAuth struct{}

func (fakeAuth) Authenticate(userID, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	if token == "expired" {
		return common.ErrTokenExpired
	}
	if token != "tok-"+userID {
		return common.ErrorUnauthorized
	}
	return nil
}

// -------- harness --------

type harness struct {
	svc   *FileService
	repo  *memRepo
	store *fakeStore
	mock  sqlmock.Sqlmock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := newMemRepo()
	store := &fakeStore{}
	svc := NewFileService(db, &fakeRM{repo: repo}, store, fakeAuth{}, testKEK, logging.NewNopLogger())

	n := 0
	svc.newFileID = func() string {
		n++
		return fmt.Sprintf("file-%d", n)
	}
	svc.newStorageKey = func(userID string) string { return "users/" + userID + "/key" }

	return &harness{svc: svc, repo: repo, store: store, mock: mock}
}

func (h *harness) expectTx(commit bool) {
	h.mock.ExpectBegin()
	if commit {
		h.mock.ExpectCommit()
	} else {
		h.mock.ExpectRollback()
	}
}

var errBoom = errors.New("boom")
