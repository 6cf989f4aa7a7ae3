package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetNewOnly bool

func init() {
	resetCmd.Flags().BoolVar(&resetNewOnly, "new-only", false, "skip straight to offering new cards, bypassing due/relearn stages")
	rootCmd.AddCommand(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset queue state",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := currentEngine()
		engine.Reset(resetNewOnly)
		fmt.Println("Queue state reset.")
	},
}
