package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show scheduled/memorisation counts",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := currentEngine()

		scheduled, err := engine.ScheduledCount()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		nonMemorised, err := engine.NonMemorisedCount()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		active, err := engine.ActiveCount()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("Scheduled: %d\n", scheduled)
		fmt.Printf("Non-memorised: %d\n", nonMemorised)
		fmt.Printf("Active: %d\n", active)
	},
}
