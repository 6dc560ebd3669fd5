package persistence

import "filialstore/pkg/types"

// JSONStore implements Store using a JSON file (the original filiais.json
// format). Every call reopens the file; nothing is cached in between.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) LoadFiliais() ([]types.Filial, error) {
	return LoadFiliais(s.path)
}

func (s *JSONStore) DumpFiliais(filiais []types.Filial) error {
	return DumpFiliais(s.path, filiais)
}

func (s *JSONStore) Close() error {
	return nil
}
