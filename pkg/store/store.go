// Package store persists named graph snapshots.
//
// Four backends implement the [Store] interface:
//   - memory: process-local storage for tests and throwaway sessions
//   - file: JSON files in a directory, the CLI default
//   - redis: shared storage for multi-instance deployments
//   - mongo: document storage with queryable snapshots
//
// # Usage
//
// Open a store from configuration:
//
//	st, err := store.Open(ctx, cfg.Store)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	doc := snapshot.Capture(g)
//	if err := st.Save(ctx, "weekly", doc); err != nil {
//	    return err
//	}
//
// All backends treat snapshot names as opaque identifiers limited to
// letters, digits, dots, dashes, and underscores.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Aayushjha0128/GraphSense/pkg/config"
	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// Sentinel errors for snapshot storage.
var (
	// ErrNotFound is returned when no snapshot exists under the given name.
	ErrNotFound = errors.New("snapshot not found")

	// ErrInvalidName is returned for names that could escape the
	// backend's keyspace, such as path fragments.
	ErrInvalidName = errors.New("invalid snapshot name")

	// ErrUnknownBackend is returned by [Open] for an unrecognized
	// backend selector.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store is the interface for snapshot storage backends. Implementations
// are safe for concurrent use.
type Store interface {
	// Save stores a snapshot under name, replacing any previous one.
	Save(ctx context.Context, name string, doc snapshot.Document) error

	// Load retrieves the snapshot stored under name.
	// Returns ErrNotFound if no snapshot exists.
	Load(ctx context.Context, name string) (snapshot.Document, error)

	// List returns all stored snapshot names in ascending order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the snapshot stored under name.
	// Returns ErrNotFound if no snapshot exists.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

var nameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidName reports whether name is usable as a snapshot key on every
// backend.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." && nameRe.MatchString(name)
}

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Open builds the store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.Store) (Store, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.Dir)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL)
	case "mongo":
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
