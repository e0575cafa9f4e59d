package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage()
	assert.Equal("div: dividing by 0", From("div: dividing by %v", 0))
	assert.Equal("'x' is not a divide method", From("'%v' is not a divide method", "x"))

	SetLanguage("en-GB", "en-US")
	assert.Equal("stack empty", From("stack empty"))
}
