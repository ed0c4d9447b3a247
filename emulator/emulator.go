// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/hrm/asm"
	"github.com/ezrec/hrm/internal"
	"github.com/ezrec/hrm/machine"
)

// Defines returns the assembler equates for a machine with the given
// register count, followed by any extra equates.
func Defines(registers int, extra ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	seqs := append([]iter.Seq2[string, string]{machine.Defines(registers)}, extra...)
	return internal.IterSeq2Concat(seqs...)
}

// Emulator state. Machine + program listing.
type Emulator struct {
	Verbose          bool         // If set, enables verbose logging.
	*machine.Machine              // Reference to the machine.
	Program          *asm.Program // Reference to the program listing.
	Limit            int          // Maximum steps per run. Zero is unlimited.
}

// NewEmulator creates an emulator for a program.
func NewEmulator(prog *asm.Program, registers int) (emu *Emulator, err error) {
	m, err := machine.NewMachine(prog.Instructions(), registers, false)
	if err != nil {
		return
	}

	emu = &Emulator{
		Machine: m,
		Program: prog,
	}

	return
}

// LineNo returns the source line of the next instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Machine.Pc)
}

// Reset the machine for a new run.
func (emu *Emulator) Reset(inbox []int) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset(inbox)
}

// Tick performs a single step of the machine.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine.Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Limit > 0 && emu.Machine.Count >= emu.Limit {
		err = ErrStepLimit
		return
	}

	err = emu.Machine.Step()
	if err != nil {
		return
	}

	done = emu.Machine.Halted()
	return
}

// Run the program to completion on the inbox.
func (emu *Emulator) Run(inbox []int) (outbox []int, count int, err error) {
	emu.Reset(inbox)

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.WithField("state", emu.Machine.String()).Warnf("emulator: %v", err)
			}
			return
		}
	}

	outbox = emu.Machine.Outbox()
	if outbox == nil {
		outbox = []int{}
	}
	count = emu.Machine.Count

	return
}
