package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tdfs/internal/dbx"
	"github.com/dmitrijs2005/tdfs/internal/server/repositories/files"
)

// RepositoryManager vends repositories bound to a DB or transaction handle
// and owns schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Files(db dbx.DBTX) files.Repository
}
