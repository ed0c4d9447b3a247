package machine

import (
	"fmt"
	"math"
	"strings"
)

const (
	REGISTER_COUNT = 10 // Default register file size.
)

// Value is the content of the buffer or of a register. The zero Value is empty.
type Value struct {
	Int int
	Set bool
}

// Some returns a Value holding n.
func Some(n int) Value {
	return Value{Int: n, Set: true}
}

// Get returns the held integer, and false if empty.
func (v Value) Get() (n int, ok bool) {
	return v.Int, v.Set
}

func (v Value) String() string {
	if !v.Set {
		return "-"
	}
	return fmt.Sprintf("%d", v.Int)
}

// addInt returns a + b, and false on overflow.
func addInt(a, b int) (n int, ok bool) {
	n = a + b
	ok = (n > a) == (b > 0)
	return
}

// subInt returns a - b, and false on overflow.
func subInt(a, b int) (n int, ok bool) {
	n = a - b
	ok = (n < a) == (b > 0)
	return
}

// mulInt returns a * b, and false on overflow.
func mulInt(a, b int) (n int, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return
	}
	n = a * b
	ok = n/b == a
	return
}

// Registers is the register file. Slots are addressed by index.
type Registers []Value

// NewRegisters returns a register file of count empty slots, save for the
// last which holds the constant 0.
func NewRegisters(count int) (regs Registers) {
	regs = make(Registers, count)
	if count > 0 {
		regs[count-1] = Some(0)
	}
	return
}

// Slot returns a pointer to register r.
func (regs Registers) Slot(r uint32) (slot *Value, err error) {
	if uint64(r) >= uint64(len(regs)) {
		err = ErrRegisterIndex
		return
	}
	slot = &regs[r]
	return
}

// Get reads register r, failing if out of range or empty.
func (regs Registers) Get(r uint32) (n int, err error) {
	slot, err := regs.Slot(r)
	if err != nil {
		return
	}

	n, ok := slot.Get()
	if !ok {
		err = ErrEmptyRegister
	}
	return
}

func (regs Registers) String() string {
	words := make([]string, len(regs))
	for n, v := range regs {
		words[n] = v.String()
	}
	return "[" + strings.Join(words, " ") + "]"
}
