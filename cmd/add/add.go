/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package add

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
	nome    *string
	bairro  *string
	backend *string
	path    *string
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "add a new filial",
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

		if err := filial.NewService(store).Add(*id, *nome, *bairro); err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusCode(err))
		}
	},
}

func init() {
	id = AddCmd.PersistentFlags().Int("id", 0, "id of the new filial")
	_ = AddCmd.MarkPersistentFlagRequired("id")

	nome = AddCmd.PersistentFlags().String("nome", "", "name of the new filial")
	_ = AddCmd.MarkPersistentFlagRequired("nome")

	bairro = AddCmd.PersistentFlags().String("bairro", "", "bairro of the new filial")
	_ = AddCmd.MarkPersistentFlagRequired("bairro")

	backend = AddCmd.PersistentFlags().String("backend", "", "storage backend (json or sqlite)")
	path = AddCmd.PersistentFlags().String("path", "", "path to the filiais file")
}
