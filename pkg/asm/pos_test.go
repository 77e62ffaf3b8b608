package asm_test

import (
	"testing"

	"github.com/fredmorcos/has/pkg/asm"
	"github.com/stretchr/testify/assert"
)

func TestPosWithoutNewline(t *testing.T) {
	pos := asm.StartPos()
	assert.Equal(t, asm.Pos{Line: 1, Col: 0}, pos)

	for i, b := range []byte("abc") {
		pos.Advance(b)
		assert.Equal(t, asm.Pos{Line: 1, Col: i + 1}, pos)
	}
}

func TestPosWithNewline(t *testing.T) {
	pos := asm.StartPos()

	pos.Advance('a')
	assert.Equal(t, asm.Pos{Line: 1, Col: 1}, pos)

	pos.Advance('\n')
	assert.Equal(t, asm.Pos{Line: 2, Col: 0}, pos)

	pos.Advance('b')
	assert.Equal(t, asm.Pos{Line: 2, Col: 1}, pos)

	pos.Advance('c')
	assert.Equal(t, asm.Pos{Line: 2, Col: 2}, pos)
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "1:0", asm.StartPos().String())
	assert.Equal(t, "3:14", asm.Pos{Line: 3, Col: 14}.String())
}
