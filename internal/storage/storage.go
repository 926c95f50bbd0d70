package storage

import "mime/multipart"

// StoredFile is the result of persisting an upload.
type StoredFile struct {
	URL  string // public URL the API hands back to clients
	Path string // location on the backing store
}

// Storage persists uploaded files (resumes, ad media).
type Storage interface {
	Save(file *multipart.FileHeader, subdir string) (*StoredFile, error)
	Delete(path string) error
}
