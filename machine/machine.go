// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	log "github.com/sirupsen/logrus"
)

// Defines returns the assembler equates describing a machine with the
// given register count.
func Defines(registers int) iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"REGISTERS": fmt.Sprintf("%d", registers),
		"ZERO":      fmt.Sprintf("%d", registers-1),
	})
}

// Machine is the execution state of a single program.
type Machine struct {
	Verbose bool // Set to log every executed instruction.

	Program  []Instruction // Instructions, addressed by Pc.
	Register Registers     // Register file. Kept across runs.
	Buffer   Value         // The accumulator.
	Pc       int           // Address of the next instruction.
	Count    int           // Instructions executed since the last reset.

	labels LabelTable
	inbox  Queue
	outbox Queue
}

// NewMachine creates a machine for a program, with a register file of
// registers slots.
func NewMachine(program []Instruction, registers int, verbose bool) (m *Machine, err error) {
	if registers < 1 {
		err = ErrRegisterCount
		return
	}

	m = &Machine{
		Verbose:  verbose,
		Program:  program,
		Register: NewRegisters(registers),
		Buffer:   Some(0),
		labels:   NewLabelTable(program),
	}

	return
}

// Labels returns the label table built for the program.
func (m *Machine) Labels() LabelTable {
	return m.labels
}

// Reset prepares for a new run. The register file is left untouched.
func (m *Machine) Reset(inbox []int) {
	m.Buffer = Some(0)
	m.Pc = 0
	m.Count = 0
	m.inbox.Load(inbox)
	m.outbox.Reset()

	if m.Verbose {
		log.WithField("program", m.Program).Info("machine: program")
		log.WithField("inbox", inbox).Info("machine: reset")
	}
}

// Halted is true once the program counter has run off the program.
func (m *Machine) Halted() bool {
	return m.Pc >= len(m.Program)
}

// Inbox returns a copy of the inputs not yet consumed.
func (m *Machine) Inbox() []int {
	return m.inbox.Values()
}

// Outbox returns a copy of the outputs produced since the last reset.
func (m *Machine) Outbox() []int {
	return m.outbox.Values()
}

// String returns the current machine state as a string.
func (m *Machine) String() string {
	return fmt.Sprintf("count: %d, pc: %d, register: %v, buffer: %v",
		m.Count, m.Pc, m.Register, m.Buffer)
}

// Run executes the program from the start until it halts or fails.
// On failure, no outputs are returned.
func (m *Machine) Run(inbox []int) (outbox []int, count int, err error) {
	m.Reset(inbox)

	for !m.Halted() {
		err = m.Step()
		if err != nil {
			return
		}
	}

	outbox = m.Outbox()
	if outbox == nil {
		outbox = []int{}
	}
	count = m.Count

	return
}

// Step fetches and executes a single instruction.
func (m *Machine) Step() (err error) {
	if m.Halted() {
		return
	}

	ins := m.Program[m.Pc]
	m.Count++

	if m.Verbose {
		log.WithFields(log.Fields{
			"count":       m.Count,
			"instruction": ins.String(),
			"pc":          m.Pc,
			"register":    m.Register.String(),
			"buffer":      m.Buffer.String(),
		}).Info("machine: step")
	}

	err = m.Execute(ins)
	if err != nil {
		err = &ErrExecute{Pc: m.Pc, Instruction: ins, Err: err}
	}

	return
}

// Execute executes a single instruction at the current program counter.
func (m *Machine) Execute(ins Instruction) (err error) {
	next_pc := m.Pc + 1

	switch ins.Op {
	case OP_INBOX:
		value, ok := m.inbox.Pop()
		if !ok {
			return ErrEmptyInbox
		}
		m.Buffer = Some(value)
	case OP_OUTBOX:
		value, ok := m.Buffer.Get()
		if !ok {
			return ErrEmptyBuffer
		}
		m.outbox.Push(value)
		m.Buffer = Value{}
	case OP_COPYFROM:
		var value int
		value, err = m.getRegister(ins.Arg)
		if err != nil {
			return
		}
		m.Buffer = Some(value)
	case OP_COPYTO:
		value, ok := m.Buffer.Get()
		if !ok {
			return ErrEmptyBuffer
		}
		var slot *Value
		slot, err = m.slot(ins.Arg)
		if err != nil {
			return
		}
		*slot = Some(value)
	case OP_ADD:
		var reg int
		reg, err = m.getRegister(ins.Arg)
		if err != nil {
			return
		}
		value, ok := m.Buffer.Get()
		if !ok {
			return ErrEmptyBuffer
		}
		sum, ok := addInt(reg, value)
		if !ok {
			return ErrOverflow
		}
		m.Buffer = Some(sum)
	case OP_SUB, OP_MUL:
		value, ok := m.Buffer.Get()
		if !ok {
			return ErrEmptyBuffer
		}
		var reg int
		reg, err = m.getRegister(ins.Arg)
		if err != nil {
			return
		}
		var result int
		if ins.Op == OP_SUB {
			result, ok = subInt(value, reg)
		} else {
			result, ok = mulInt(reg, value)
		}
		if !ok {
			return ErrOverflow
		}
		m.Buffer = Some(result)
	case OP_BUMP_PLUS, OP_BUMP_MINUS:
		var value int
		value, err = m.getRegister(ins.Arg)
		if err != nil {
			return
		}
		delta := 1
		if ins.Op == OP_BUMP_MINUS {
			delta = -1
		}
		var ok bool
		value, ok = addInt(value, delta)
		if !ok {
			return errors.Join(ErrOverflow, ErrRegister(ins.Arg))
		}
		m.Register[ins.Arg] = Some(value)
		m.Buffer = Some(value)
	case OP_LABEL:
		// Address marker only.
	case OP_JUMP, OP_JUMP_ZERO, OP_JUMP_NEGATIVE:
		taken := true
		if ins.Op != OP_JUMP {
			value, ok := m.Buffer.Get()
			if !ok {
				return ErrEmptyBuffer
			}
			if ins.Op == OP_JUMP_ZERO {
				taken = value == 0
			} else {
				taken = value < 0
			}
		}
		if taken {
			next_pc, err = m.labels.Address(ins.Arg)
			if err != nil {
				return
			}
		}
	default:
		return ErrOpcodeInvalid
	}

	m.Pc = next_pc

	return
}

// slot returns register r, or an error naming it if out of range.
func (m *Machine) slot(r uint32) (slot *Value, err error) {
	slot, err = m.Register.Slot(r)
	if err != nil {
		err = errors.Join(err, ErrRegister(r))
	}
	return
}

// getRegister reads register r, or returns an error naming it.
func (m *Machine) getRegister(r uint32) (value int, err error) {
	value, err = m.Register.Get(r)
	if err != nil {
		err = errors.Join(err, ErrRegister(r))
	}
	return
}
