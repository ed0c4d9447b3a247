package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/hrm/asm"
	"github.com/ezrec/hrm/machine"
)

// Tile is a register preset applied before every case.
type Tile struct {
	Index uint32 `toml:"index"`
	Value int    `toml:"value"`
}

// Case is a single inbox, and the outbox it must produce.
type Case struct {
	Name   string `toml:"name"`
	Inbox  []int  `toml:"inbox"`
	Outbox []int  `toml:"outbox"`
}

// Level is a puzzle definition, loaded from TOML.
type Level struct {
	Title     string         `toml:"title"`
	Registers int            `toml:"registers"`
	Limit     int            `toml:"limit"`
	Equates   map[string]any `toml:"equates"`
	Tiles     []Tile         `toml:"tile"`
	Cases     []Case         `toml:"case"`
}

// LoadLevel parses a level from TOML.
func LoadLevel(r io.Reader) (lvl *Level, err error) {
	lvl = &Level{}
	_, err = toml.NewDecoder(r).Decode(lvl)
	if err != nil {
		lvl = nil
		return
	}

	// Defaults
	if lvl.Registers == 0 {
		lvl.Registers = machine.REGISTER_COUNT
	}

	for _, tile := range lvl.Tiles {
		if lvl.Registers > 0 && uint64(tile.Index) >= uint64(lvl.Registers) {
			err = fmt.Errorf("%w: %d", ErrLevelTile, tile.Index)
			lvl = nil
			return
		}
	}

	for n := range lvl.Cases {
		if len(lvl.Cases[n].Name) == 0 {
			lvl.Cases[n].Name = fmt.Sprintf("#%d", n+1)
		}
	}

	return
}

// LoadLevelFile parses a level from a TOML file.
func LoadLevelFile(path string) (lvl *Level, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	lvl, err = LoadLevel(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

// Defines returns the assembler equates for the level.
func (lvl *Level) Defines() iter.Seq2[string, string] {
	equates := map[string]string{}
	for key, value := range lvl.Equates {
		equates[key] = fmt.Sprintf("%v", value)
	}
	return Defines(lvl.Registers, maps.All(equates))
}

// Assemble a program with the level's equates predefined.
func (lvl *Level) Assemble(input io.Reader) (prog *asm.Program, err error) {
	assembler := &asm.Assembler{}
	for key, value := range lvl.Defines() {
		assembler.Predefine(key, value)
	}
	return assembler.Parse(input)
}

// Emulator creates an emulator for the program, with the level's
// register presets and step limit.
func (lvl *Level) Emulator(prog *asm.Program) (emu *Emulator, err error) {
	emu, err = NewEmulator(prog, lvl.Registers)
	if err != nil {
		return
	}

	emu.Limit = lvl.Limit
	for _, tile := range lvl.Tiles {
		emu.Machine.Register[tile.Index] = machine.Some(tile.Value)
	}

	return
}

// Result is the outcome of running a program against a level case.
type Result struct {
	Index  int
	Case   Case
	Outbox []int
	Count  int
	Err    error
}

// Failure returns why the case failed, or nil if it passed.
func (res *Result) Failure() (err error) {
	switch {
	case res.Err != nil:
		err = res.Err
	case !slices.Equal(res.Outbox, res.Case.Outbox):
		err = fmt.Errorf("%w: %w", ErrOutboxMismatch, &ErrOutbox{Expected: res.Case.Outbox, Actual: res.Outbox})
	default:
		return
	}

	err = &ErrCase{Index: res.Index, Name: res.Case.Name, Err: err}
	return
}

// Pass is true if the case produced the expected outbox.
func (res *Result) Pass() bool {
	return res.Failure() == nil
}

// Check runs every case on a fresh emulator.
func (lvl *Level) Check(prog *asm.Program, verbose bool) (results []Result, err error) {
	for n, c := range lvl.Cases {
		var emu *Emulator
		emu, err = lvl.Emulator(prog)
		if err != nil {
			return
		}
		emu.Verbose = verbose

		res := Result{Index: n + 1, Case: c}
		res.Outbox, res.Count, res.Err = emu.Run(c.Inbox)
		results = append(results, res)
	}

	return
}
