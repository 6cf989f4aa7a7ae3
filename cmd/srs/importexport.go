package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcalvez/srscore/internal/store"
)

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import cards from a YAML fixture",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer f.Close()

		cards, err := store.ReadCards(f)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		st := store.NewSQLiteStore(store.CurrentDB())
		seenFacts := map[string]bool{}
		for _, card := range cards {
			if !seenFacts[card.FactOID.String()] {
				if err := st.InsertFact(card.FactOID); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
				seenFacts[card.FactOID.String()] = true
			}
			if err := st.InsertCard(card); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		fmt.Printf("Imported %d card(s).\n", len(cards))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <card-id>",
	Short: "Export a single card as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st := store.NewSQLiteStore(store.CurrentDB())
		card, err := st.Card(oidArg(args[0]))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := store.WriteCard(os.Stdout, card); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}
