package asm

import "github.com/fredmorcos/has/pkg/hack"

// ----------------------------------------------------------------------------
// General information

// This section contains some general information about the Asm language layer.
//
// The package is the textual front end of the assembler: a streaming lexer
// (lexer.go) feeds a streaming parser (parsing.go), which emits the statement
// datatypes below while sinking label declarations into the symbol table. The
// 'Assemble' driver (lowering.go) runs the stream to completion and lowers it
// to a 'hack.Program' ready for encoding.

// Just used to put together the five statement shapes in the same datatype,
// use a type switch to disambiguate.
type Stmt interface{}

// An address reference already resolved to a value: a numeric '@123', a
// predefined symbol, or a label that was declared before this use.
type Addr struct {
	Pos  Pos
	Addr uint16
}

// An '@name' whose name is neither predefined nor declared yet. It is either a
// forward label reference or a variable; only the encoder can tell, once the
// whole source has been seen.
type UnresolvedAddr struct {
	Pos  Pos
	Name string
}

// A C instruction of the 'dest=comp' shape.
type Assign struct {
	DestPos Pos
	Dest    hack.Dest
	CompPos Pos
	Comp    hack.Comp
}

// A C instruction of the 'comp;jump' shape.
type Branch struct {
	CompPos Pos
	Comp    hack.Comp
	JumpPos Pos
	Jump    hack.Jump
}

// A C instruction of the full 'dest=comp;jump' shape.
type Inst struct {
	DestPos Pos
	Dest    hack.Dest
	CompPos Pos
	Comp    hack.Comp
	JumpPos Pos
	Jump    hack.Jump
}
