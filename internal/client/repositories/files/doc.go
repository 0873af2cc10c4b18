// Package files provides the client-side journal of files the CLI has put.
//
// The journal records every file registered with the server together with
// the local path it came from and whether its upload finished, so that
// failed uploads can be listed and listings can show local names.
//
//	repo := files.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, f)
//	_ = repo.MarkUploaded(ctx, f.FileID)
//	pend, _ := repo.ListPending(ctx)
package files
