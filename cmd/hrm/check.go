package main

import (
	"fmt"
	"io"
	"os"
	"path"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/hrm/asm"
	"github.com/ezrec/hrm/emulator"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] level program",
	Short: "check a program against every case of a level.",
	Long: `Run a program against every case of a TOML level file, and report which
cases pass. Exits with status 1 if any case fails.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		verbose := getFlag(cmd, "verbose")

		lvl, err := emulator.LoadLevelFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		prog, err := readLevelProgram(lvl, args[1], verbose)
		if err != nil {
			log.Fatal(err)
		}

		results, err := lvl.Check(prog, verbose)
		if err != nil {
			log.Fatal(err)
		}

		if !report(os.Stdout, lvl, results) {
			os.Exit(1)
		}
	},
}

// readLevelProgram loads a program image, or assembles program source with
// the level equates.
func readLevelProgram(lvl *emulator.Level, filename string, verbose bool) (prog *asm.Program, err error) {
	if path.Ext(filename) == IMAGE_EXT {
		return readProgram(filename, lvl.Registers, verbose)
	}

	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = lvl.Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
	}
	return
}

// report prints one line per case, and returns true if every case passed.
func report(w io.Writer, lvl *emulator.Level, results []emulator.Result) (pass bool) {
	pass = true
	if len(lvl.Title) != 0 {
		fmt.Fprintln(w, lvl.Title)
	}

	for _, res := range results {
		failure := res.Failure()
		if failure != nil {
			pass = false
			fmt.Fprintf(w, "FAIL %v\n", failure)
			continue
		}
		fmt.Fprintf(w, "PASS case %d (%v) instructions: %d\n", res.Index, res.Case.Name, res.Count)
	}

	return
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
