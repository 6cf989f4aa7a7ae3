package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jcalvez/srscore/internal/scheduler"
	"github.com/jcalvez/srscore/pkg/oid"
)

var gradeDryRun bool

func init() {
	gradeCmd.Flags().BoolVar(&gradeDryRun, "dry-run", false, "compute the interval without mutating the card or running hooks")
	rootCmd.AddCommand(gradeCmd)
}

var gradeCmd = &cobra.Command{
	Use:   "grade <card-id> <grade>",
	Short: "Grade a card",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cardOID := oid.OID(args[0])
		grade, err := strconv.Atoi(args[1])
		if err != nil || grade < -1 || grade > 5 {
			fmt.Println("grade must be an integer in [-1, 5]")
			os.Exit(1)
		}

		engine, st := currentEngine()
		card, err := st.Card(cardOID)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		newInterval, err := engine.GradeAnswer(card, scheduler.Grade(grade), gradeDryRun, 0*time.Second)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if gradeDryRun {
			fmt.Printf("would schedule in %d seconds\n", newInterval)
			return
		}

		if err := st.UpdateCard(card); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("scheduled in %d seconds (next_rep=%d)\n", newInterval, card.NextRep)
	},
}
