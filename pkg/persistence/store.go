package persistence

import (
	"errors"
	"fmt"

	"filialstore/pkg/types"
)

// Storage failure sentinels. Callers map these onto the integer status
// contract with filial.StatusCode.
var (
	// ErrFileNotFound means the backing file does not exist.
	ErrFileNotFound = errors.New("filiais file not found")
	// ErrInvalidFormat means the backing file exists but is not valid JSON.
	ErrInvalidFormat = errors.New("filiais file in invalid format")
	// ErrWriteFailed means the rewritten file could not be persisted.
	ErrWriteFailed = errors.New("failed to write filiais file")
)

// Store abstracts filial record persistence.
type Store interface {
	LoadFiliais() ([]types.Filial, error)
	DumpFiliais(filiais []types.Filial) error
	Close() error
}

// NewStoreWithBackend creates a Store for the given backend and optional path.
func NewStoreWithBackend(backend, path string) (Store, error) {
	return NewStore(types.StorageConfig{Backend: backend, Path: path})
}

// NewStore creates a Store based on the storage configuration.
func NewStore(cfg types.StorageConfig) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = "json" // default to json for backward compatibility
	}

	switch backend {
	case "json":
		path := cfg.Path
		if path == "" {
			path = DefaultFiliaisPath
		}
		return NewJSONStore(path), nil
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = DefaultSQLitePath
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
