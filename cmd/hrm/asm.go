package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] program",
	Short: "assemble a program into an image.",
	Long: `Assemble a program source. With --save the program is written as a binary
image which "run" accepts in place of the source, otherwise the listing is
printed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, err := readProgram(args[0], getInt(cmd, "registers"), getFlag(cmd, "verbose"))
		if err != nil {
			log.Fatal(err)
		}

		save := getString(cmd, "save")
		if len(save) == 0 {
			fmt.Print(prog.String())
			return
		}

		data, err := prog.MarshalBinary()
		if err != nil {
			log.Fatal(err)
		}

		err = os.WriteFile(save, data, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("hrm: %v: %d opcodes saved", save, len(prog.Opcodes))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().IntP("registers", "r", 10, "number of registers")
	asmCmd.Flags().StringP("save", "s", "", "save the program image to this file")
}
