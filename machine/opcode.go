package machine

import (
	"fmt"
)

// Op is an instruction opcode. The set is closed.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INBOX         = Op(0)  // inbox
	OP_OUTBOX        = Op(1)  // outbox
	OP_COPYFROM      = Op(2)  // copyfrom
	OP_COPYTO        = Op(3)  // copyto
	OP_ADD           = Op(4)  // add
	OP_SUB           = Op(5)  // sub
	OP_MUL           = Op(6)  // mul
	OP_BUMP_PLUS     = Op(7)  // bump+
	OP_BUMP_MINUS    = Op(8)  // bump-
	OP_LABEL         = Op(9)  // label
	OP_JUMP          = Op(10) // jump
	OP_JUMP_ZERO     = Op(11) // jumpzero
	OP_JUMP_NEGATIVE = Op(12) // jumpnegative
)

// Ops returns every opcode, in numeric order.
func Ops() []Op {
	ops := make([]Op, len(_Op_index)-1)
	for n := range ops {
		ops[n] = Op(n)
	}
	return ops
}

// Valid is true for opcodes in the instruction set.
func (op Op) Valid() bool {
	return op >= OP_INBOX && op <= OP_JUMP_NEGATIVE
}

// HasArg is true if the opcode takes a register or label operand.
func (op Op) HasArg() bool {
	return op.Valid() && op != OP_INBOX && op != OP_OUTBOX
}

// IsJump is true if the opcode takes a label operand.
func (op Op) IsJump() bool {
	return op == OP_JUMP || op == OP_JUMP_ZERO || op == OP_JUMP_NEGATIVE
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op  Op
	Arg uint32 // Register index, or label id. Zero if unused.
}

// Make an instruction. Arg is dropped for opcodes that take no operand.
func Make(op Op, arg uint32) Instruction {
	if !op.HasArg() {
		arg = 0
	}
	return Instruction{Op: op, Arg: arg}
}

// Instruction constructors, one per opcode.
func Inbox() Instruction { return Make(OP_INBOX, 0) }
func Outbox() Instruction { return Make(OP_OUTBOX, 0) }
func CopyFrom(reg uint32) Instruction { return Make(OP_COPYFROM, reg) }
func CopyTo(reg uint32) Instruction { return Make(OP_COPYTO, reg) }
func Add(reg uint32) Instruction { return Make(OP_ADD, reg) }
func Sub(reg uint32) Instruction { return Make(OP_SUB, reg) }
func Mul(reg uint32) Instruction { return Make(OP_MUL, reg) }
func BumpPlus(reg uint32) Instruction { return Make(OP_BUMP_PLUS, reg) }
func BumpMinus(reg uint32) Instruction { return Make(OP_BUMP_MINUS, reg) }
func Label(id uint32) Instruction { return Make(OP_LABEL, id) }
func Jump(id uint32) Instruction { return Make(OP_JUMP, id) }
func JumpIfZero(id uint32) Instruction { return Make(OP_JUMP_ZERO, id) }
func JumpIfNegative(id uint32) Instruction { return Make(OP_JUMP_NEGATIVE, id) }

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	if !ins.Op.HasArg() {
		return ins.Op.String()
	}
	return fmt.Sprintf("%v %d", ins.Op, ins.Arg)
}
