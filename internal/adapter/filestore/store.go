package filestore

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded product images on local disk. Stored files get
// generated names so client-supplied names never reach the filesystem.
type Store interface {
	Save(file *multipart.FileHeader) (filename, path string, err error)
	Remove(path string) error
	Dir() string
}

type diskStore struct {
	dir    string
	logger *slog.Logger
}

// NewDiskStore creates the upload directory if missing.
func NewDiskStore(dir string, logger *slog.Logger) (Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStore{dir: dir, logger: logger}, nil
}

func (s *diskStore) Save(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write file: %w", err)
	}

	return filename, path, nil
}

func (s *diskStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove stored file", "path", path, "error", err)
		return err
	}
	return nil
}

func (s *diskStore) Dir() string {
	return s.dir
}
