package mocks

import (
	"github.com/user/depthreel/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem.
type FileSystem struct {
	// Files is returned by ListFiles, as given.
	Files []string
	// ListErr, when set, is returned by ListFiles.
	ListErr error
	// Dirs lists paths that IsDir reports as directories.
	Dirs map[string]bool
}

func (m *FileSystem) ListFiles(dir, ext string) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Files, nil
}

func (m *FileSystem) IsDir(path string) (bool, error) {
	return m.Dirs[path], nil
}

var _ ports.FileSystem = (*FileSystem)(nil)
