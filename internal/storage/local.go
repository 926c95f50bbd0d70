package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes uploads under a base directory on local disk and
// serves them through a static file route.
type LocalStorage struct {
	basePath string
	baseURL  string
	maxSize  int64
}

func NewLocalStorage(basePath, baseURL string, maxSize int64) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxSize:  maxSize,
	}
}

func (s *LocalStorage) Save(file *multipart.FileHeader, subdir string) (*StoredFile, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return nil, fmt.Errorf("file %q exceeds the %d byte upload limit", file.Filename, s.maxSize)
	}

	dir := filepath.Join(s.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	// Random prefix keeps concurrent uploads of the same filename apart.
	name := uuid.NewString() + "_" + sanitizeFilename(file.Filename)
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{
		URL:  s.baseURL + "/" + subdir + "/" + name,
		Path: dst,
	}, nil
}

func (s *LocalStorage) Delete(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeFilename strips path separators and anything else that could
// escape the upload directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
