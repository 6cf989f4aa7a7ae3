package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var nextLearnAhead bool

func init() {
	nextCmd.Flags().BoolVar(&nextLearnAhead, "learn-ahead", false, "allow pulling in long-interval cards scheduled within the next 7 days")
	rootCmd.AddCommand(nextCmd)
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next due card",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := currentEngine()
		card, err := engine.NextCard(nextLearnAhead)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if card == nil {
			fmt.Println("Nothing to study.")
			return
		}

		label := color.BlueString("review")
		if card.Grade < 0 {
			label = color.GreenString("new")
		} else if card.Grade == 0 {
			label = color.RedString("relearn")
		}
		fmt.Printf("[%s] %s (fact %s)\n", label, card.OID, card.FactOID)
	},
}
