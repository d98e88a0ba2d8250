package store

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diagramlab/stencil/pkg/document"
	"github.com/diagramlab/stencil/pkg/errors"
)

// FileStore persists each document as a JSON file in a directory.
// This is the default backend for CLI usage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a document by ID.
func (s *FileStore) Get(ctx context.Context, id string) (document.Document, error) {
	path, err := s.path(id)
	if err != nil {
		return document.Document{}, err
	}
	doc, err := document.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return document.Document{}, ErrNotFound
		}
		return document.Document{}, err
	}
	return doc, nil
}

// Set stores a document under the given ID.
func (s *FileStore) Set(ctx context.Context, id string, doc document.Document) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	return document.WriteFile(doc, path)
}

// Delete removes a document.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the IDs of all stored documents.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// path converts a document ID to a file path. IDs are validated so a crafted
// ID can never escape the store directory.
func (s *FileStore) path(id string) (string, error) {
	if err := errors.ValidateDocumentID(id); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, id+".json"), nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
