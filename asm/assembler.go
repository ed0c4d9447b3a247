// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hrm/machine"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// opMap maps mnemonics to opcodes.
var opMap = func() map[string]machine.Op {
	ops := map[string]machine.Op{}
	for _, op := range machine.Ops() {
		ops[op.String()] = op
	}
	return ops
}()

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler converts program text into a Program.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string
	opcodes   []Opcode
}

// Predefine defines a new equate or redefines an existing equate, applied
// at the start of every Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the operand value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Non-integer equates are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > math.MaxUint32 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var arg uint32
	switch {
	case !op.HasArg() && len(words) > 1:
		err = ErrOpcodeExtraArgs
		return
	case op.HasArg() && len(words) < 2:
		err = ErrOpcodeValueMissing
		return
	case len(words) > 2:
		err = ErrOpcodeExtraArgs
		return
	case op.HasArg():
		arg, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
	}

	asm.opcodes = append(asm.opcodes, Opcode{
		LineNo:      lineno,
		Words:       words,
		Instruction: machine.Make(op, arg),
	})

	return
}

// stripComment removes '#' and ';' trailing comments, and '//' comment lines.
func stripComment(text string) string {
	if n := strings.IndexAny(text, "#;"); n >= 0 {
		text = text[:n]
	}
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "//") {
		return ""
	}
	return text
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.opcodes = nil
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Infof("asm: %v: %v", lineno, text)
		}

		line = stripComment(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.opcodes),
	}

	return
}
