package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"itemstore-backend/internal/dto"
)

var ErrFileNotFound = errors.New("file not found")

// FileService stores uploads in a single flat directory. The filename is
// the storage key; a later upload with the same name overwrites the
// earlier one.
type FileService struct {
	dir string
}

func NewFileService(dir string) (*FileService, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{dir: dir}, nil
}

func (s *FileService) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// List enumerates regular files in the upload directory. Size and
// modification time come from the filesystem, not stored metadata.
func (s *FileService) List() ([]dto.FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	files := []dto.FileInfo{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		files = append(files, dto.FileInfo{
			Filename: entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	return files, nil
}

// Path resolves filename inside the upload directory, failing with
// ErrFileNotFound when it is absent or not a regular file.
func (s *FileService) Path(filename string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrFileNotFound
	}
	return path, nil
}
