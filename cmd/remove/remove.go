/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package remove

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filialstore/pkg/config"
	"filialstore/pkg/filial"
	"filialstore/pkg/persistence"
)

var (
	id      *int
	backend *string
	path    *string
)

// RemoveCmd represents the remove command
var RemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "remove a filial by id",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := config.Load(persistence.DefaultConfigPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusUnknownError)
		}

		storage := cfg.Storage
		if *backend != "" {
			storage.Backend = *backend
		}
		if *path != "" {
			storage.Path = *path
		}

		store, err := persistence.NewStore(storage)
		if err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusUnknownError)
		}
		defer store.Close()

		if err := filial.NewService(store).Remove(*id); err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusCode(err))
		}
	},
}

func init() {
	id = RemoveCmd.PersistentFlags().Int("id", 0, "id of the filial to remove")
	_ = RemoveCmd.MarkPersistentFlagRequired("id")

	backend = RemoveCmd.PersistentFlags().String("backend", "", "storage backend (json or sqlite)")
	path = RemoveCmd.PersistentFlags().String("path", "", "path to the filiais file")
}
