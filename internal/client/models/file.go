// Package models defines client-side data models used by the tdfs CLI.
package models

import "time"

// UploadStatus tracks a local file through put.
type UploadStatus string

const (
	// UploadPending means the server registered the file but the upload has
	// not completed.
	UploadPending   UploadStatus = "pending"
	UploadCompleted UploadStatus = "completed"
)

// LocalFile is the CLI's record of a file it put. Content and keys are not
// stored; the server remains the source of truth for both.
type LocalFile struct {
	FileID       string
	FileName     string
	LocalPath    string
	SHA256       string
	FileSize     uint32
	UploadStatus UploadStatus
	CreatedAt    time.Time
}
