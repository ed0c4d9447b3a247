package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]int{"a": 1})
	b := maps.All(map[string]int{"b": 2, "c": 3})

	got := maps.Collect(IterSeq2Concat(a, b))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	// Later sequences override earlier keys.
	got = maps.Collect(IterSeq2Concat(a, maps.All(map[string]int{"a": 9})))
	assert.Equal(map[string]int{"a": 9}, got)

	// Early stop
	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
