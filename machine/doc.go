// Package machine implements a single accumulator machine with a small register
// file, an inbox and an outbox.
//
// Each instruction moves a value between the inbox, the accumulator (the buffer),
// the registers and the outbox, does arithmetic on the buffer, or jumps to a
// numbered label. A label that appears more than once jumps to its first
// occurrence. A run ends when the program counter passes the last instruction,
// or with a typed error naming the failing instruction.
//
// Registers are kept between runs. The last register holds zero when the
// machine is created.
package machine
