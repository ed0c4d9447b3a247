package machine

import (
	"errors"
)

// LabelTable maps label ids to the address of their first 'label'
// instruction.
type LabelTable map[uint32]int

// NewLabelTable scans the program once. When a label id is defined more
// than once, the earliest address is kept.
func NewLabelTable(program []Instruction) (table LabelTable) {
	table = LabelTable{}
	for addr, ins := range program {
		if ins.Op != OP_LABEL {
			continue
		}
		if _, ok := table[ins.Arg]; ok {
			continue
		}
		table[ins.Arg] = addr
	}

	return
}

// Address resolves a label id to an instruction address.
func (table LabelTable) Address(id uint32) (addr int, err error) {
	addr, ok := table[id]
	if !ok {
		err = errors.Join(ErrInvalidJumpAddress, ErrLabelMissing(id))
	}
	return
}
