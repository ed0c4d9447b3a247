package machine

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrRegisterCount = errors.New(f("register count must be at least 1"))

	// Execution errors
	ErrEmptyInbox         = errors.New(f("inbox empty"))
	ErrEmptyBuffer        = errors.New(f("buffer empty"))
	ErrEmptyRegister      = errors.New(f("register empty"))
	ErrInvalidJumpAddress = errors.New(f("invalid jump address"))
	ErrRegisterIndex      = errors.New(f("register index out of bounds"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOverflow           = errors.New(f("integer overflow"))
)

// ErrRegister names the register an execution error refers to.
type ErrRegister uint32

func (er ErrRegister) Error() string {
	return f("register %d", uint32(er))
}

// ErrLabelMissing names a label that was jumped to but never defined.
type ErrLabelMissing uint32

func (el ErrLabelMissing) Error() string {
	return f("label %d missing", uint32(el))
}

// ErrExecute reports the instruction that failed, and where.
type ErrExecute struct {
	Pc          int
	Instruction Instruction
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("pc %d '%v' %v", err.Pc, err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
