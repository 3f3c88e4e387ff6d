// Package store defines the persistence substrate: a flat key -> string
// store with get/set/remove, plus the keys the app writes.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/teamtodo/internal/store/jsonstore"
	"github.com/idilsaglam/teamtodo/internal/store/memstore"
	"github.com/idilsaglam/teamtodo/internal/store/sqlitestore"
)

// Keys written by the app. Each collection lives under its own key.
const (
	KeyTodos        = "todos"
	KeyTodoIDCount  = "todoIdCounter"
	KeyTeamTodos    = "teamTodos"
	KeyTeamMessages = "teamMessages"
	KeyUsers        = "users"
	KeyCurrentUser  = "currentUser"
)

// KV is the substrate. Implementations are synchronous and local.
type KV interface {
	// Get returns ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open returns the KV for backend rooted at dir, and a closer for it.
// logger receives recoverable read problems; nil discards them.
func Open(backend, dir string, logger *log.Logger) (KV, io.Closer, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == BackendMemory {
		return memstore.New(), nopCloser{}, nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("mkdir: %w", err)
	}
	switch backend {
	case "", BackendJSON:
		s, err := jsonstore.Open(filepath.Join(dir, jsonstore.DefaultFileName), jsonstore.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case BackendSQLite:
		s, err := sqlitestore.Open(filepath.Join(dir, sqlitestore.DefaultFileName))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
