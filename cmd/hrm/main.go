// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hrm",
	Short: "Assemble, run and check accumulator machine programs.",
	Long: `hrm assembles programs for a single accumulator machine with a small
register file, runs them against an inbox, and checks them against levels.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace every machine step")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}
