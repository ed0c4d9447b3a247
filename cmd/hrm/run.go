package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/hrm/emulator"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program [value...]",
	Short: "run a program on an inbox.",
	Long: `Run a program source or image on an inbox, then print the number of
instructions executed and the outbox. The inbox is taken from the values on
the command line, or read from the input file.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := getFlag(cmd, "verbose")
		registers := getInt(cmd, "registers")

		prog, err := readProgram(args[0], registers, verbose)
		if err != nil {
			log.Fatal(err)
		}

		inbox, err := readInbox(args[1:], getString(cmd, "input"))
		if err != nil {
			log.Fatalf("%v: %v", getString(cmd, "input"), err)
		}

		emu, err := emulator.NewEmulator(prog, registers)
		if err != nil {
			log.Fatal(err)
		}
		emu.Verbose = verbose
		emu.Limit = getInt(cmd, "limit")

		outbox, count, err := emu.Run(inbox)
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		output := getString(cmd, "output")
		ouf := os.Stdout
		if output != "-" {
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatal(err)
			}
			defer ouf.Close()
		}

		err = writeOutbox(ouf, count, outbox)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntP("registers", "r", 10, "number of registers")
	runCmd.Flags().IntP("limit", "l", 0, "maximum instructions per run, 0 is unlimited")
	runCmd.Flags().StringP("input", "i", "-", "inbox input file")
	runCmd.Flags().StringP("output", "o", "-", "outbox output file")
}
