package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobboard/internal/common"
)

// FileStore persists uploaded artifacts under relative paths that are later
// served back over HTTP.
type FileStore interface {
	Save(relPath string, r io.Reader) error
	Remove(relPath string) error
}

// LocalStore keeps files on disk under a single uploads root.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create uploads directory", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Save(relPath string, r io.Reader) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return common.NewError(common.CodeInternal, "failed to create upload directory", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to create upload file", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return common.NewError(common.CodeInternal, "failed to write upload file", err)
	}
	return nil
}

func (s *LocalStore) Remove(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return common.NewError(common.CodeInternal, "failed to remove upload file", err)
	}
	return nil
}

// Root returns the uploads root for serving stored files.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", common.NewError(common.CodeValidation, "invalid file path", nil)
	}
	return filepath.Join(s.root, cleaned), nil
}

// SanitizeFilename strips directory components and characters that do not
// belong in a stored file name.
func SanitizeFilename(name string) string {
	name = filepath.Base(filepath.FromSlash(name))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		return "resume"
	}
	return name
}
