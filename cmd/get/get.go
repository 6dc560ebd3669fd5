/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package get

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

// GetCmd represents the get command
var GetCmd = &cobra.Command{
	Use:   "get",
	Short: "look up a filial by id",
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

		info, err := filial.NewService(store).Get(*id)
		if err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusCode(err))
		}

		fmt.Printf("%s (%s)\n", info.Nome, info.Bairro)
	},
}

func init() {
	id = GetCmd.PersistentFlags().Int("id", 0, "id of the filial to look up")
	_ = GetCmd.MarkPersistentFlagRequired("id")

	backend = GetCmd.PersistentFlags().String("backend", "", "storage backend (json or sqlite)")
	path = GetCmd.PersistentFlags().String("path", "", "path to the filiais file")
}
