package emulator

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrStepLimit      = errors.New(f("step limit reached"))
	ErrOutboxMismatch = errors.New(f("outbox mismatch"))
	ErrLevelTile      = errors.New(f("level tile outside of the register file"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCase indicates which level case failed.
type ErrCase struct {
	Index int
	Name  string
	Err   error
}

func (err *ErrCase) Error() string {
	return f("case %d (%v) %v", err.Index, err.Name, err.Err)
}

func (err *ErrCase) Unwrap() error {
	return err.Err
}

// ErrOutbox details an outbox mismatch.
type ErrOutbox struct {
	Expected []int
	Actual   []int
}

func (err *ErrOutbox) Error() string {
	return f("expected %v, got %v", err.Expected, err.Actual)
}
