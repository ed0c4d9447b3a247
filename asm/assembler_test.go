package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hrm/machine"
)

func parse(t *testing.T, program []string) (prog *Program) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssemblerTriangle(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// calculates 1 + 2 + ... + n where n comes from inbox",
		"copyfrom 9",
		"copyto 1",
		"copyto 2",
		"bump+ 1",
		"inbox",
		"copyto 2",
		"",
		"label 1",
		"sub 1",
		"copyto 3",
		"add 2",
		"copyto 2",
		"copyfrom 3",
		"jumpzero 2",
		"jump 1",
		"label 2",
		"copyfrom 2",
		"outbox",
	}

	prog := parse(t, program)

	expected := []machine.Instruction{
		machine.CopyFrom(9),
		machine.CopyTo(1),
		machine.CopyTo(2),
		machine.BumpPlus(1),
		machine.Inbox(),
		machine.CopyTo(2),
		machine.Label(1),
		machine.Sub(1),
		machine.CopyTo(3),
		machine.Add(2),
		machine.CopyTo(2),
		machine.CopyFrom(3),
		machine.JumpIfZero(2),
		machine.Jump(1),
		machine.Label(2),
		machine.CopyFrom(2),
		machine.Outbox(),
	}

	assert.Equal(expected, prog.Instructions())

	// Line numbers skip the comment and the blank line.
	assert.Equal(2, prog.LineNo(0))
	assert.Equal(7, prog.LineNo(5))
	assert.Equal(9, prog.LineNo(6))
	assert.Equal(19, prog.LineNo(16))

	m, err := machine.NewMachine(prog.Instructions(), machine.REGISTER_COUNT, false)
	assert.NoError(err)
	outbox, _, err := m.Run([]int{5})
	assert.NoError(err)
	assert.Equal([]int{15}, outbox)
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"inbox",
		"outbox",
		"copyfrom 0",
		"copyto 0x1",
		"add 2",
		"sub 3",
		"mul 4",
		"bump+ 5",
		"bump- 6",
		"label 7",
		"jump 8",
		"jumpzero 0b1001",
		"jumpnegative 0o12",
	}

	prog := parse(t, program)

	for n, op := range machine.Ops() {
		ins := prog.Opcodes[n].Instruction
		assert.Equal(op, ins.Op, program[n])
		if op.HasArg() {
			assert.Equal(uint32(n-2), ins.Arg, program[n])
		}
		assert.Equal(n+1, prog.Opcodes[n].LineNo)
		assert.Equal(strings.Fields(program[n]), prog.Opcodes[n].Words)
	}
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"  // full line",
		"inbox # trailing",
		"\toutbox ; also trailing",
		"# hash line",
		"; semicolon line",
		"   ",
	}

	prog := parse(t, program)
	assert.Equal([]machine.Instruction{machine.Inbox(), machine.Outbox()}, prog.Instructions())
	assert.Equal(2, prog.LineNo(0))
	assert.Equal(3, prog.LineNo(1))
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ COUNTER 3",
		".equ LOOP 1",
		"label LOOP",
		"bump- COUNTER",
		"jumpzero $(LOOP + 1)",
		"jump LOOP",
		"label $(LOOP+1)",
		"copyfrom $(COUNTER * 2)",
		"copyto $(LINENO)",
	}

	prog := parse(t, program)

	expected := []machine.Instruction{
		machine.Label(1),
		machine.BumpMinus(3),
		machine.JumpIfZero(2),
		machine.Jump(1),
		machine.Label(2),
		machine.CopyFrom(6),
		machine.CopyTo(9),
	}

	assert.Equal(expected, prog.Instructions())
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	for key, value := range machine.Defines(5) {
		asm.Predefine(key, value)
	}
	asm.Predefine("TILE", "2")
	asm.Predefine("TILE", "3")

	prog, err := asm.Parse(strings.NewReader("copyfrom ZERO\ncopyto TILE\nadd $(REGISTERS - 2)"))
	assert.NoError(err)
	assert.Equal([]machine.Instruction{
		machine.CopyFrom(4),
		machine.CopyTo(3),
		machine.Add(3),
	}, prog.Instructions())

	// Predefines survive into the next parse.
	prog, err = asm.Parse(strings.NewReader("copyto TILE"))
	assert.NoError(err)
	assert.Equal([]machine.Instruction{machine.CopyTo(3)}, prog.Instructions())
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"unknown", []string{"inbox", "dance"}, 2, ErrInstructionInvalid},
		{"missing", []string{"copyfrom"}, 1, ErrOpcodeValueMissing},
		{"extra", []string{"", "add 1 2"}, 2, ErrOpcodeExtraArgs},
		{"inbox_arg", []string{"inbox 3"}, 1, ErrOpcodeExtraArgs},
		{"number", []string{"jump x"}, 1, ErrParseNumber("x")},
		{"negative", []string{"copyto -1"}, 1, ErrParseNumber("-1")},
		{"overflow", []string{"copyto 0x100000000"}, 1, ErrParseNumber("0x100000000")},
		{"equ_syntax", []string{".equ A"}, 1, ErrEquateSyntax},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{"expr", []string{"copyto $(1 +)"}, 1, ErrParseExpression("1 +")},
		{"expr_string", []string{"copyto $('a')"}, 1, ErrParseExpression("'a'")},
		{"expr_negative", []string{"copyto $(0 - 1)"}, 1, ErrParseExpression("0 - 1")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Verbose: true}
	prog, err := asm.Parse(strings.NewReader("inbox\noutbox\n"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Opcodes))
}
