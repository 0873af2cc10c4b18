// Package models defines server-side data models persisted in the database.
package models

import "time"

// File is the server-side metadata of a stored file. The ciphertext itself
// lives in object storage under StorageKey.
type File struct {
	// ID is the server-assigned file_id.
	ID string
	// UserID is the owner of the file.
	UserID   string
	FileName string
	// SHA256 is the hex digest of the plaintext, as declared by the client.
	SHA256   string
	FileSize uint32

	// StorageKey is the object-storage key of the ciphertext blob.
	StorageKey string
	// TaskID is set when a processing task is attached to the file.
	TaskID *string
	// Collaborators are users the owner shared the file with, in the order
	// they were added.
	Collaborators []string

	// WrappedKey is the file's kms.AeadConfig encrypted with the server KEK.
	WrappedKey []byte
	// KeyNonce is the AEAD nonce used to wrap WrappedKey.
	KeyNonce []byte

	CreatedAt time.Time
}

// CanRead reports whether userID owns the file or is a collaborator.
func (f *File) CanRead(userID string) bool {
	if f.UserID == userID {
		return true
	}
	for _, c := range f.Collaborators {
		if c == userID {
			return true
		}
	}
	return false
}
