package asm

import (
	"fmt"

	"github.com/fredmorcos/has/pkg/hack"
)

// ----------------------------------------------------------------------------
// Tokens

// TokenKind enumerates everything the lexer can produce.
type TokenKind int

const (
	TokNumAddr  TokenKind = iota // @123
	TokNameAddr                  // @FOO
	TokLabel                     // (FOO)
	TokDest                      // the part before '=' in a C instruction
	TokComp                      // the computation of a C instruction
	TokJump                      // the part after ';' in a C instruction
	TokSemi                      // the ';' separator itself
)

var tokenKindNames = map[TokenKind]string{
	TokNumAddr:  "numeric address",
	TokNameAddr: "symbolic address",
	TokLabel:    "label",
	TokDest:     "destination",
	TokComp:     "computation",
	TokJump:     "jump",
	TokSemi:     "semicolon",
}

func (k TokenKind) String() string {
	if name, found := tokenKindNames[k]; found {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// A lexical token with the position of its first byte. Only the payload field
// matching 'Kind' is meaningful: 'Addr' for numeric addresses, 'Name' for
// symbolic addresses and labels, and one of 'Dest'/'Comp'/'Jump' for the C
// instruction fields.
type Token struct {
	Kind TokenKind
	Pos  Pos
	Addr uint16
	Name string
	Dest hack.Dest
	Comp hack.Comp
	Jump hack.Jump
}

func (t Token) String() string {
	switch t.Kind {
	case TokNumAddr:
		return fmt.Sprintf("@%d at %s", t.Addr, t.Pos)
	case TokNameAddr:
		return fmt.Sprintf("@%s at %s", t.Name, t.Pos)
	case TokLabel:
		return fmt.Sprintf("(%s) at %s", t.Name, t.Pos)
	case TokDest:
		return fmt.Sprintf("destination %s at %s", t.Dest, t.Pos)
	case TokComp:
		return fmt.Sprintf("computation %s at %s", t.Comp, t.Pos)
	case TokJump:
		return fmt.Sprintf("jump %s at %s", t.Jump, t.Pos)
	case TokSemi:
		return fmt.Sprintf("semicolon at %s", t.Pos)
	}
	return fmt.Sprintf("unknown token at %s", t.Pos)
}
