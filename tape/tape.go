// Package tape moves inbox and outbox values to and from byte streams.
package tape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrTapeValue = errors.New(f("tape value invalid"))
)

// ErrTapeWord names the word that could not be read as an integer.
type ErrTapeWord string

func (err ErrTapeWord) Error() string {
	return f("'%v' is not an integer", string(err))
}

// Tape reads an inbox from Input, and writes an outbox to Output.
// Input values are separated by whitespace or commas.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

// splitValues is a bufio.SplitFunc for whitespace or comma separated words.
func splitValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	isSep := func(b byte) bool {
		return b == ',' || b == ' ' || b == '\t' || b == '\n' || b == '\r'
	}

	start := 0
	for start < len(data) && isSep(data[start]) {
		start++
	}

	for n := start; n < len(data); n++ {
		if isSep(data[n]) {
			return n + 1, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Inbox reads all decimal values from Input.
func (tc *Tape) Inbox() (inbox []int, err error) {
	if tc.Input == nil {
		return
	}

	scanner := bufio.NewScanner(tc.Input)
	scanner.Split(splitValues)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		var value int64
		value, err = strconv.ParseInt(word, 10, 0)
		if err != nil {
			err = errors.Join(ErrTapeValue, ErrTapeWord(word))
			return
		}
		inbox = append(inbox, int(value))
	}

	err = scanner.Err()
	return
}

// Write writes the outbox to Output, one value per line.
func (tc *Tape) Write(outbox []int) (err error) {
	if tc.Output == nil {
		return
	}

	w := bufio.NewWriter(tc.Output)
	for _, value := range outbox {
		_, err = fmt.Fprintf(w, "%d\n", value)
		if err != nil {
			return
		}
	}

	return w.Flush()
}
