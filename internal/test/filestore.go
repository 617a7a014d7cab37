package test

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
)

// FileStoreStub records saved and removed files without touching disk.
type FileStoreStub struct {
	SaveFn   func(*multipart.FileHeader) (string, string, error)
	RemoveFn func(string) error
	DirVal   string

	Saved   []string
	Removed []string
	next    int
}

// Save returns deterministic generated names.
func (s *FileStoreStub) Save(file *multipart.FileHeader) (string, string, error) {
	if s.SaveFn != nil {
		return s.SaveFn(file)
	}
	s.next++
	filename := fmt.Sprintf("stored-%d%s", s.next, filepath.Ext(file.Filename))
	path := filepath.Join(s.Dir(), filename)
	s.Saved = append(s.Saved, path)
	return filename, path, nil
}

// Remove records removal requests.
func (s *FileStoreStub) Remove(path string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(path)
	}
	s.Removed = append(s.Removed, path)
	return nil
}

// Dir returns the configured directory or a default.
func (s *FileStoreStub) Dir() string {
	if s.DirVal != "" {
		return s.DirVal
	}
	return "uploads"
}
