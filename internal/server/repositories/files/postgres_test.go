package files

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/dmitrijs2005/tdfs/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func sampleFile() *models.File {
	return &models.File{
		ID:         "f1",
		UserID:     "u1",
		FileName:   "a.txt",
		SHA256:     digest,
		FileSize:   1024,
		StorageKey: "users/u1/2026/10/17/k",
		WrappedKey: []byte("wk"),
		KeyNonce:   []byte("kn"),
	}
}

var insertRe = `(?s)^\s*INSERT\s+INTO\s+files\s*\(id,.*\)\s*VALUES\s*\(\$1,.*\$9\)\s*RETURNING\s+created_at`

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertRe).
		WithArgs("f1", "u1", "a.txt", digest, int64(1024), "users/u1/2026/10/17/k", nil, []byte("wk"), []byte("kn")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	f := sampleFile()
	require.NoError(t, repo.Create(context.Background(), f))
	assert.Equal(t, created, f.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_WithTaskID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertRe).
		WithArgs("f1", "u1", "a.txt", digest, int64(1024), "users/u1/2026/10/17/k", "task-1", []byte("wk"), []byte("kn")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	f := sampleFile()
	task := "task-1"
	f.TaskID = &task
	require.NoError(t, repo.Create(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertRe).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.Create(context.Background(), sampleFile())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertRe).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), sampleFile())
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

var (
	selectFileRe   = `(?s)^\s*SELECT\s+id,\s*user_id,.*FROM\s+files\s+WHERE\s+id=\$1`
	selectCollabRe = `(?s)^SELECT\s+user_id\s+FROM\s+file_collaborators\s+WHERE\s+file_id=\$1\s+ORDER\s+BY\s+position`
	fileColumns    = []string{"id", "user_id", "file_name", "sha256", "file_size", "storage_key", "task_id", "wrapped_key", "key_nonce", "created_at"}
)

func TestGetByID_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(selectFileRe).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow("f1", "u1", "a.txt", digest, int64(1024), "skey", "task-9", []byte("wk"), []byte("kn"), created))
	mock.ExpectQuery(selectCollabRe).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u2").AddRow("u3"))

	f, err := repo.GetByID(context.Background(), "f1")
	require.NoError(t, err)

	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, uint32(1024), f.FileSize)
	assert.Equal(t, "skey", f.StorageKey)
	require.NotNil(t, f.TaskID)
	assert.Equal(t, "task-9", *f.TaskID)
	assert.Equal(t, []string{"u2", "u3"}, f.Collaborators)
	assert.Equal(t, []byte("wk"), f.WrappedKey)
	assert.Equal(t, created, f.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NullTaskNoCollaborators(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectFileRe).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow("f1", "u1", "a.txt", digest, int64(1), "skey", nil, []byte("wk"), []byte("kn"), time.Now()))
	mock.ExpectQuery(selectCollabRe).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	f, err := repo.GetByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Nil(t, f.TaskID)
	assert.NotNil(t, f.Collaborators)
	assert.Empty(t, f.Collaborators)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectFileRe).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_CollaboratorsError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectFileRe).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow("f1", "u1", "a.txt", digest, int64(1), "skey", nil, []byte("wk"), []byte("kn"), time.Now()))
	mock.ExpectQuery(selectCollabRe).WithArgs("f1").WillReturnError(errors.New("boom"))

	_, err := repo.GetByID(context.Background(), "f1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select collaborators")
}

var listRe = `(?s)SELECT\s+f\.id\s+FROM\s+files\s+f.*WHERE\s+f\.user_id=\$1.*EXISTS.*ORDER\s+BY\s+f\.created_at,\s*f\.id`

func TestListAccessible(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listRe).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("f1").AddRow("f2"))

	ids, err := repo.ListAccessible(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, ids)
}

func TestListAccessible_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listRe).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ListAccessible(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, ids)
}

func TestListAccessible_RowError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listRe).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("f1").RowError(0, errors.New("bad row")))

	_, err := repo.ListAccessible(context.Background(), "u1")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	re := `^DELETE\s+FROM\s+files\s+WHERE\s+id=\$1$`

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(re).WithArgs("f1").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), "f1"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(re).WithArgs("f1").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Delete(context.Background(), "f1"), common.ErrorNotFound)
	})

	t.Run("rows affected error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(re).WithArgs("f1").WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))
		err := repo.Delete(context.Background(), "f1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rows affected error")
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(re).WithArgs("f1").WillReturnError(errors.New("down"))
		assert.Error(t, repo.Delete(context.Background(), "f1"))
	})
}

func TestAddCollaborator(t *testing.T) {
	re := `(?s)INSERT\s+INTO\s+file_collaborators.*COALESCE\(MAX\(position\),\s*0\)\s*\+\s*1.*ON\s+CONFLICT\s*\(file_id,\s*user_id\)\s*DO\s+NOTHING`

	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(re).WithArgs("f1", "u2").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.AddCollaborator(context.Background(), "f1", "u2"))

	mock.ExpectExec(re).WithArgs("f1", "u3").WillReturnError(errors.New("fk"))
	err := repo.AddCollaborator(context.Background(), "f1", "u3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add collaborator")

	require.NoError(t, mock.ExpectationsWereMet())
}
