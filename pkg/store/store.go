// Package store provides persistence for diagram documents.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files in a directory for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable document collections
//
// All backends store the canonical [document.Document] format, so a document
// saved through one backend loads identically through another.
package store

import (
	"context"
	"errors"

	"github.com/diagramlab/stencil/pkg/document"
)

// ErrNotFound is returned by Get when no document exists under the given ID.
var ErrNotFound = errors.New("document not found")

// Store is the interface for document storage backends.
type Store interface {
	// Get retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	Get(ctx context.Context, id string) (document.Document, error)

	// Set stores a document under the given ID, overwriting any previous one.
	Set(ctx context.Context, id string, doc document.Document) error

	// Delete removes a document. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
