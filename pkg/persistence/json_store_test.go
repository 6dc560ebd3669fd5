package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filialstore/pkg/types"
)

func newTestFiliais() []types.Filial {
	return []types.Filial{
		{ID: 1, Nome: "Centro", Bairro: "Tijuca"},
		{ID: 2, Nome: "Zona Sul", Bairro: "Ipanema"},
		{ID: 3, Nome: "Norte", Bairro: "Grajau"},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filiais.json")
	store := NewJSONStore(path)

	filiais := newTestFiliais()
	if err := store.DumpFiliais(filiais); err != nil {
		t.Fatalf("DumpFiliais: %v", err)
	}

	loaded, err := store.LoadFiliais()
	if err != nil {
		t.Fatalf("LoadFiliais: %v", err)
	}

	if len(loaded) != len(filiais) {
		t.Fatalf("expected %d filiais, got %d", len(filiais), len(loaded))
	}
	for i := range filiais {
		if loaded[i] != filiais[i] {
			t.Errorf("filial %d: expected %+v, got %+v", i, filiais[i], loaded[i])
		}
	}
}

func TestJSONStoreMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.LoadFiliais()
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestJSONStoreInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filiais.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := NewJSONStore(path).LoadFiliais()
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestJSONStoreWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filiais.json")
	store := NewJSONStore(path)

	if err := store.DumpFiliais([]types.Filial{{ID: 1, Nome: "Centro", Bairro: "Tijuca"}}); err != nil {
		t.Fatalf("DumpFiliais: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// keys and 4-space indentation are the published file format
	content := string(data)
	for _, want := range []string{`"id": 1`, `"nome": "Centro"`, `"bairro": "Tijuca"`} {
		if !strings.Contains(content, want) {
			t.Errorf("dumped file missing %s:\n%s", want, content)
		}
	}
	if !strings.Contains(content, "\n    {") {
		t.Errorf("dumped file not indented with 4 spaces:\n%s", content)
	}
}

func TestJSONStoreDumpLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(filepath.Join(dir, "filiais.json"))

	if err := store.DumpFiliais(newTestFiliais()); err != nil {
		t.Fatalf("DumpFiliais: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "filiais.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only filiais.json, got %v", names)
	}
}

func TestNewStoreDefaults(t *testing.T) {
	store, err := NewStore(types.StorageConfig{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*JSONStore); !ok {
		t.Errorf("expected JSONStore by default, got %T", store)
	}
}

func TestNewStoreUnknownBackend(t *testing.T) {
	if _, err := NewStore(types.StorageConfig{Backend: "redis"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
