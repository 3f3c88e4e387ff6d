package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/teamtodo/internal/logging"
)

// JSON-backed KV. One file holds every key as a string value.
// No locking; fine for a local single-user CLI.

const DefaultFileName = "store.json"

type Store struct {
	path string
	data map[string]string
	log  *log.Logger
}

type Option func(*Store)

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open loads path, treating a missing file as empty. A file that does not
// parse is moved aside to <path>.corrupt-<stamp> and the store starts empty.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, data: map[string]string{}, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s.data); err != nil {
		s.data = map[string]string{}
		s.quarantine(err)
		return s, nil
	}
	if s.data == nil {
		s.data = map[string]string{}
	}
	return s, nil
}

func (s *Store) quarantine(cause error) {
	aside := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102-150405"))
	if err := os.Rename(s.path, aside); err != nil {
		s.log.Error("store file unreadable and could not be moved aside", "path", s.path, "err", cause, "rename", err)
		return
	}
	s.log.Warn("store file unreadable, starting empty", "path", s.path, "moved_to", aside, "err", cause)
}

func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	prev, had := s.data[key]
	s.data[key] = value
	if err := s.save(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *Store) Remove(key string) error {
	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.save(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

// save writes to a temp file and renames it over the store, so a crash
// mid-write leaves the previous contents.
func (s *Store) save() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
