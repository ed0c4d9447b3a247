package asm

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/hrm/machine"
)

const (
	IMAGE_MAGIC   = "hrm" // Program image identifier.
	IMAGE_VERSION = 1     // Program image format version.
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo      int
	Words       []string
	Instruction machine.Instruction
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

// Instructions returns the program's instruction sequence.
func (prog *Program) Instructions() (program []machine.Instruction) {
	program = make([]machine.Instruction, len(prog.Opcodes))
	for n, op := range prog.Opcodes {
		program[n] = op.Instruction
	}
	return
}

// LineNo returns the source line of the instruction at pc, or 0 if pc is
// outside of the program.
func (prog *Program) LineNo(pc int) int {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return 0
	}
	return prog.Opcodes[pc].LineNo
}

// Codes iterates over the instructions by address.
func (prog *Program) Codes() iter.Seq2[int, machine.Instruction] {
	return func(yield func(pc int, ins machine.Instruction) bool) {
		for pc, op := range prog.Opcodes {
			if !yield(pc, op.Instruction) {
				return
			}
		}
	}
}

// String returns the program listing, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for pc, ins := range prog.Codes() {
		fmt.Fprintf(&sb, "%03d: %-16v ; line %d\n", pc, ins, prog.LineNo(pc))
	}
	return sb.String()
}

// imageCode is the serialized form of an Opcode.
type imageCode struct {
	LineNo int    `cbor:"1,keyasint"`
	Op     int    `cbor:"2,keyasint"`
	Arg    uint32 `cbor:"3,keyasint,omitempty"`
}

// image is the serialized form of a Program.
type image struct {
	Magic   string      `cbor:"1,keyasint"`
	Version int         `cbor:"2,keyasint"`
	Codes   []imageCode `cbor:"3,keyasint"`
}

// imageEncMode encodes canonically, so equal programs have equal images.
var imageEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("asm: failed to create CBOR enc mode: %v", err))
	}
	imageEncMode = em
}

// MarshalBinary encodes the program as a CBOR image.
func (prog *Program) MarshalBinary() (data []byte, err error) {
	img := image{
		Magic:   IMAGE_MAGIC,
		Version: IMAGE_VERSION,
		Codes:   make([]imageCode, len(prog.Opcodes)),
	}
	for n, op := range prog.Opcodes {
		img.Codes[n] = imageCode{
			LineNo: op.LineNo,
			Op:     int(op.Instruction.Op),
			Arg:    op.Instruction.Arg,
		}
	}

	return imageEncMode.Marshal(&img)
}

// UnmarshalBinary decodes a CBOR image made by MarshalBinary.
func (prog *Program) UnmarshalBinary(data []byte) (err error) {
	var img image
	err = cbor.Unmarshal(data, &img)
	if err != nil {
		err = errors.Join(ErrImageInvalid, err)
		return
	}

	if img.Magic != IMAGE_MAGIC || img.Version != IMAGE_VERSION {
		err = ErrImageInvalid
		return
	}

	opcodes := make([]Opcode, len(img.Codes))
	for n, code := range img.Codes {
		op := machine.Op(code.Op)
		if !op.Valid() {
			err = errors.Join(ErrImageInvalid, ErrInstructionInvalid)
			return
		}
		ins := machine.Make(op, code.Arg)
		opcodes[n] = Opcode{
			LineNo:      code.LineNo,
			Words:       strings.Fields(ins.String()),
			Instruction: ins,
		}
	}

	prog.Opcodes = opcodes
	return
}
