package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/hrm/asm"
	"github.com/ezrec/hrm/emulator"
	"github.com/ezrec/hrm/tape"
)

// IMAGE_EXT is the file extension of assembled program images.
const IMAGE_EXT = ".hrmc"

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int flag, or exit if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readProgram loads a program image, or assembles program source with the
// machine equates for the register count.
func readProgram(filename string, registers int, verbose bool) (prog *asm.Program, err error) {
	if path.Ext(filename) == IMAGE_EXT {
		var data []byte
		data, err = os.ReadFile(filename)
		if err != nil {
			return
		}
		prog = &asm.Program{}
		err = prog.UnmarshalBinary(data)
		if err != nil {
			err = fmt.Errorf("%v: %w", filename, err)
			prog = nil
		}
		return
	}

	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	for key, value := range emulator.Defines(registers) {
		assembler.Predefine(key, value)
	}

	prog, err = assembler.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", filename, err)
	}
	return
}

// readInbox reads the inbox from the command line values, or from the input
// file. An input of "-" is stdin, unless stdin is a terminal.
func readInbox(values []string, input string) (inbox []int, err error) {
	tc := &tape.Tape{}

	switch {
	case len(values) != 0:
		tc.Input = strings.NewReader(strings.Join(values, " "))
	case input == "-":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Debug("hrm: stdin is a terminal, inbox is empty")
			return
		}
		tc.Input = os.Stdin
	default:
		var inf *os.File
		inf, err = os.Open(input)
		if err != nil {
			return
		}
		defer inf.Close()
		tc.Input = inf
	}

	return tc.Inbox()
}

// writeOutbox reports the instruction count, then the outbox.
func writeOutbox(w io.Writer, count int, outbox []int) (err error) {
	_, err = fmt.Fprintf(w, "instructions: %d\n", count)
	if err != nil {
		return
	}

	tc := &tape.Tape{Output: w}
	return tc.Write(outbox)
}
