package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"filialstore/pkg/types"
)

// DumpFiliais rewrites the whole filiais file. The array is pretty-printed
// with 4-space indentation, matching the format external tooling expects.
// The data is written to a temp file in the same directory and renamed over
// the target so a crash mid-write cannot leave a truncated file behind.
func DumpFiliais(path string, filiais []types.Filial) error {
	data, err := json.MarshalIndent(filiais, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal filiais: %v", ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".filiais-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}

// LoadFiliais reads the whole filiais file. A missing file is an error
// (ErrFileNotFound), not an empty store: the file is expected to pre-exist,
// see the initdb command.
func LoadFiliais(path string) ([]types.Filial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read filiais file: %w", err)
	}

	filiais := []types.Filial{}
	if err := json.Unmarshal(data, &filiais); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return filiais, nil
}
