// Package memstore is an in-process KV used by tests and throwaway runs.
package memstore

import "errors"

// Store keeps values in a map. FailWrites makes Set and Remove fail, to
// exercise the write-failure path.
type Store struct {
	data       map[string]string
	FailWrites bool
}

var ErrWriteFailed = errors.New("memstore: write failed")

func New() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	s.data[key] = value
	return nil
}

func (s *Store) Remove(key string) error {
	if s.FailWrites {
		return ErrWriteFailed
	}
	delete(s.data, key)
	return nil
}

// Len reports how many keys are stored.
func (s *Store) Len() int { return len(s.data) }
