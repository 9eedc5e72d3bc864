// Package store persists published KIR documents.
//
// A Store holds one JSON document per name. DiskStore keeps documents in a
// local directory; S3Store pushes them to an S3 bucket. Implement the Store
// interface to target other backends.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when no document exists under the given name.
var ErrNotFound = errors.New("store: document not found")

// ErrBadName is returned for names that would escape the store's namespace.
var ErrBadName = errors.New("store: invalid document name")

// Store is a named-document storage backend.
type Store interface {
	// Put stores the document bytes under name and returns the backend
	// location (file path, object URL).
	Put(ctx context.Context, name string, data []byte) (string, error)

	// Get retrieves the document bytes stored under name.
	Get(ctx context.Context, name string) ([]byte, error)
}

// cleanName validates a document name and appends the .kir extension when
// missing. Path separators and parent references are rejected.
func cleanName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrBadName
	}
	if !strings.HasSuffix(name, ".kir") {
		name += ".kir"
	}
	return name, nil
}
