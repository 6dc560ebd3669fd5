/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"filialstore/cmd/add"
	"filialstore/cmd/get"
	"filialstore/cmd/initdb"
	"filialstore/cmd/list"
	"filialstore/cmd/migrate"
	"filialstore/cmd/nearest"
	"filialstore/cmd/remove"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "filialstore",
	Short: "manage the filiais record file",
	Long: `filialstore manages a small set of branch (filial) records kept in a
JSON file on disk: add, remove, get, list, and a static nearest-branch
lookup by bairro. Subcommands exit with the numeric status code of the
operation (0 on success).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	if os.Getenv("FILIALSTORE_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	rootCmd.AddCommand(add.AddCmd)
	rootCmd.AddCommand(remove.RemoveCmd)
	rootCmd.AddCommand(get.GetCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(nearest.NearestCmd)
	rootCmd.AddCommand(initdb.InitCmd)
	rootCmd.AddCommand(migrate.MigrateCmd)
}
