package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <n>",
	Short: "Count cards scheduled n days from now",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("n must be an integer")
			os.Exit(1)
		}
		engine, _ := currentEngine()
		count, err := engine.CardCountScheduledNDaysFromNow(n)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(count)
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
