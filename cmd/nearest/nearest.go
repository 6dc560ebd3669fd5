/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package nearest

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filialstore/pkg/filial"
)

var bairro *string

// NearestCmd represents the nearest command
var NearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "find the nearest filial for a bairro",
	Run: func(_ *cobra.Command, _ []string) {
		id, err := filial.Nearest(*bairro)
		if err != nil {
			fmt.Println(err)
			os.Exit(filial.StatusCode(err))
		}

		fmt.Println(id)
	},
}

func init() {
	bairro = NearestCmd.PersistentFlags().String("bairro", "", "bairro to look up")
	_ = NearestCmd.MarkPersistentFlagRequired("bairro")
}
