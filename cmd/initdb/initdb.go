package initdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"filialstore/pkg/persistence"
	"filialstore/pkg/types"
)

var (
	backend string
	path    string
)

var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "create an empty filiais store",
	Long:  `Create an empty filiais store so the data commands have a file to work against.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	InitCmd.Flags().StringVar(&backend, "backend", "json", "storage backend (json or sqlite)")
	InitCmd.Flags().StringVar(&path, "path", "", "store path (defaults based on backend)")
}

func runInit() error {
	p := path
	if p == "" {
		switch backend {
		case "json":
			p = persistence.DefaultFiliaisPath
		case "sqlite":
			p = persistence.DefaultSQLitePath
		}
	}
	if p != "" {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	if backend == "json" {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("store already exists: %s", p)
		}
	}

	store, err := persistence.NewStoreWithBackend(backend, p)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DumpFiliais([]types.Filial{}); err != nil {
		return err
	}

	fmt.Printf("Initialized empty %s store.\n", backend)
	return nil
}
