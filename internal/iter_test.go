package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(map[string]int{}, Merge[string, int]())

	base := map[string]int{"ONE": 1, "TWO": 2}
	over := map[string]int{"TWO": 22, "THREE": 3}

	merged := Merge(maps.All(base), maps.All(over))
	assert.Equal(map[string]int{"ONE": 1, "TWO": 22, "THREE": 3}, merged)
	assert.Equal(2, base["TWO"])
}
