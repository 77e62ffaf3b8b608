package asm_test

import (
	"testing"

	"github.com/fredmorcos/has/pkg/asm"
	"github.com/fredmorcos/has/pkg/hack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drains a parser over 'src', returning every statement, the populated symbol
// table and the terminating error.
func parseAll(src string) ([]asm.Stmt, *hack.SymbolTable, error) {
	symbols := hack.NewSymbolTable()
	parser := asm.NewParser(asm.NewLexer([]byte(src)), symbols)

	stmts := []asm.Stmt{}
	for parser.Scan() {
		stmts = append(stmts, parser.Stmt())
	}

	return stmts, symbols, parser.Err()
}

func parseError(t *testing.T, src string) *asm.Error {
	t.Helper()

	_, _, err := parseAll(src)
	require.Error(t, err)

	perr, ok := err.(*asm.Error)
	require.True(t, ok, "want *asm.Error, got %T", err)
	return perr
}

func TestParserEmpty(t *testing.T) {
	stmts, symbols, err := parseAll("// nothing here\n\t \n")
	assert.NoError(t, err)
	assert.Empty(t, stmts)
	assert.Zero(t, symbols.Len())
}

func TestParserAddresses(t *testing.T) {
	stmts, _, err := parseAll("@8192\n@0\n@32767")
	require.NoError(t, err)

	assert.Equal(t, []asm.Stmt{
		asm.Addr{Pos: asm.Pos{Line: 1, Col: 0}, Addr: 8192},
		asm.Addr{Pos: asm.Pos{Line: 2, Col: 0}, Addr: 0},
		asm.Addr{Pos: asm.Pos{Line: 3, Col: 0}, Addr: 32767},
	}, stmts)
}

func TestParserPredefinedSymbols(t *testing.T) {
	stmts, symbols, err := parseAll("@SP\n@R0\n@R15\n@SCREEN\n@KBD")
	require.NoError(t, err)

	want := []uint16{0, 0, 15, 16384, 24576}
	require.Len(t, stmts, len(want))
	for i, addr := range want {
		assert.Equal(t, addr, stmts[i].(asm.Addr).Addr)
	}

	// Predefined symbols never enter the program's symbol table.
	assert.Zero(t, symbols.Len())
}

func TestParserForwardReference(t *testing.T) {
	stmts, symbols, err := parseAll("@FOO\nD=A;JMP\n(FOO)")
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	// The reference precedes the declaration, so it stays unresolved; the
	// label itself binds to instruction index 2.
	assert.Equal(t, asm.UnresolvedAddr{Pos: asm.Pos{Line: 1, Col: 0}, Name: "FOO"}, stmts[0])

	addr, found := symbols.Lookup("FOO")
	require.True(t, found)
	assert.Equal(t, uint16(2), addr)
}

func TestParserBackwardReference(t *testing.T) {
	stmts, _, err := parseAll("(LOOP)\n@LOOP\n0;JMP\n@LOOP")
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	// Both references resolve immediately: the label is already bound to 0.
	assert.Equal(t, asm.Addr{Pos: asm.Pos{Line: 2, Col: 0}, Addr: 0}, stmts[0])
	assert.Equal(t, asm.Addr{Pos: asm.Pos{Line: 4, Col: 0}, Addr: 0}, stmts[2])
}

func TestParserLabelTransparency(t *testing.T) {
	// Labels bind to the index of the next instruction and never advance it.
	_, symbols, err := parseAll("(A1)\n@5\n(B2)\nD=A\n(C3)\n(D4)")
	require.NoError(t, err)

	for name, want := range map[string]uint16{"A1": 0, "B2": 1, "C3": 2, "D4": 2} {
		addr, found := symbols.Lookup(name)
		require.True(t, found, "label %s", name)
		assert.Equal(t, want, addr, "label %s", name)
	}
}

func TestParserInstructionShapes(t *testing.T) {
	stmts, _, err := parseAll("A=M-1\nAM=D|A\nD+1;JEQ\nMD=D&M;JNE\n@7")
	require.NoError(t, err)

	assert.Equal(t, []asm.Stmt{
		asm.Assign{
			DestPos: asm.Pos{Line: 1, Col: 0}, Dest: hack.DestA,
			CompPos: asm.Pos{Line: 1, Col: 2}, Comp: hack.CompMMin1,
		},
		asm.Assign{
			DestPos: asm.Pos{Line: 2, Col: 0}, Dest: hack.DestAM,
			CompPos: asm.Pos{Line: 2, Col: 3}, Comp: hack.CompDOrA,
		},
		asm.Branch{
			CompPos: asm.Pos{Line: 3, Col: 0}, Comp: hack.CompDPlus1,
			JumpPos: asm.Pos{Line: 3, Col: 4}, Jump: hack.JumpJEQ,
		},
		asm.Inst{
			DestPos: asm.Pos{Line: 4, Col: 0}, Dest: hack.DestMD,
			CompPos: asm.Pos{Line: 4, Col: 3}, Comp: hack.CompDAndM,
			JumpPos: asm.Pos{Line: 4, Col: 7}, Jump: hack.JumpJNE,
		},
		asm.Addr{Pos: asm.Pos{Line: 5, Col: 0}, Addr: 7},
	}, stmts)
}

func TestParserAssignPushback(t *testing.T) {
	// The token after 'D=A' is pushed back and dispatched as its own
	// statement.
	stmts, _, err := parseAll("D=A\n@5\nD=A\n(L)\n@L")
	require.NoError(t, err)
	require.Len(t, stmts, 4)

	assert.IsType(t, asm.Assign{}, stmts[0])
	assert.IsType(t, asm.Addr{}, stmts[1])
	assert.IsType(t, asm.Assign{}, stmts[2])
	assert.Equal(t, asm.Addr{Pos: asm.Pos{Line: 5, Col: 0}, Addr: 3}, stmts[3])
}

func TestParserDuplicateLabel(t *testing.T) {
	err := parseError(t, "(L)\n@5\n(L)")
	assert.Equal(t, asm.ErrDuplicateLabel, err.Kind)
	assert.Equal(t, "L", err.Label)
	assert.Equal(t, asm.Pos{Line: 3, Col: 0}, err.Pos)
	assert.Equal(t, asm.Pos{Line: 1, Col: 0}, err.Prior)
}

func TestParserLabelShadowsPredefined(t *testing.T) {
	err := parseError(t, "(KBD)")
	assert.Equal(t, asm.ErrDuplicateLabel, err.Kind)
}

func TestParserDestWithoutComp(t *testing.T) {
	err := parseError(t, "D=")
	assert.Equal(t, asm.ErrDestWithoutComp, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 1}, err.Pos)

	err = parseError(t, "D=@5")
	assert.Equal(t, asm.ErrDestWithoutComp, err.Kind)
}

func TestParserCompWithoutJump(t *testing.T) {
	// A bare computation stores nothing and jumps nowhere.
	err := parseError(t, "D+1")
	assert.Equal(t, asm.ErrCompWithoutJump, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 0}, err.Pos)

	err = parseError(t, "D+1\n@5")
	assert.Equal(t, asm.ErrCompWithoutJump, err.Kind)

	err = parseError(t, "0;")
	assert.Equal(t, asm.ErrCompWithoutJump, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 1}, err.Pos)

	err = parseError(t, "D=A;")
	assert.Equal(t, asm.ErrCompWithoutJump, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 3}, err.Pos)

	err = parseError(t, "D=A;@5")
	assert.Equal(t, asm.ErrCompWithoutJump, err.Kind)
}

func TestParserFreestandingSemicolon(t *testing.T) {
	err := parseError(t, ";JMP")
	assert.Equal(t, asm.ErrFreestandingSemicolon, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 0}, err.Pos)

	err = parseError(t, "0;JMP;JMP")
	assert.Equal(t, asm.ErrFreestandingSemicolon, err.Kind)
	assert.Equal(t, asm.Pos{Line: 1, Col: 5}, err.Pos)
}

func TestParserLexErrorsPropagate(t *testing.T) {
	err := parseError(t, "@5\nD=A\n@32768")
	assert.Equal(t, asm.ErrNumericOverflow, err.Kind)

	// A lexing failure mid-statement wins over the parse diagnosis.
	err = parseError(t, "D=%")
	assert.Equal(t, asm.ErrInvalidByte, err.Kind)
}

func TestParserErrorIsTerminal(t *testing.T) {
	parser := asm.NewParser(asm.NewLexer([]byte("(L)(L)\n@5")), hack.NewSymbolTable())

	for parser.Scan() {
		t.Fatal("no statement should be produced")
	}
	require.Error(t, parser.Err())

	assert.False(t, parser.Scan())
	assert.Error(t, parser.Err())
}
