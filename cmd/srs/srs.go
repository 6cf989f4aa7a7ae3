// Command srs is a small CLI front-end over the scheduler engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcalvez/srscore/internal/corelog"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var rootCmd = &cobra.Command{
	Use:   "srs",
	Short: "srs is a spaced-repetition scheduler core",
	Long:  `A standalone SM-2-derived spaced-repetition scheduler, with a small SQLite-backed card store.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "init" {
			CheckConfig()
		}

		if verboseInfo {
			corelog.CurrentLogger().SetVerboseLevel(corelog.VerboseInfo)
		}
		if verboseDebug {
			corelog.CurrentLogger().SetVerboseLevel(corelog.VerboseDebug)
		}
		if verboseTrace {
			corelog.CurrentLogger().SetVerboseLevel(corelog.VerboseTrace)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
