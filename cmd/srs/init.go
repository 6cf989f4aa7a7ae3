package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcalvez/srscore/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a scheduler configuration",
	Long:  `Create .srs/config in the current directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if _, err := config.InitConfigFromDirectory(cwd); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Initialized empty scheduler configuration in .srs/config")
	},
}
