/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filialstore/pkg/config"
	"filialstore/pkg/filial"
	"filialstore/pkg/persistence"
)

var (
	backend *string
	path    *string
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "list all filiais",
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

		infos, err := filial.NewService(store).List()
		if err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusCode(err))
		}

		for _, info := range infos {
			fmt.Printf("%s (%s)\n", info.Nome, info.Bairro)
		}
	},
}

func init() {
	backend = ListCmd.PersistentFlags().String("backend", "", "storage backend (json or sqlite)")
	path = ListCmd.PersistentFlags().String("path", "", "path to the filiais file")
}
