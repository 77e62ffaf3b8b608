package asm

import (
	"github.com/fredmorcos/has/pkg/hack"
)

// ----------------------------------------------------------------------------
// Asm Lowerer

// This section lowers the statement stream to a 'hack.Program'.
//
// Running the parser to completion is the whole first pass: every label ends
// up in the symbol table and every statement becomes a program item. The C
// instruction shapes all funnel through 'hack.NewInst', whose not-both-null
// invariant the grammar already guarantees.

// Assembles Hack source into a program ready for encoding. The returned
// program owns a symbol table holding every declared label; variables are
// still unresolved and get their RAM slots when the program is encoded.
func Assemble(src []byte) (*hack.Program, error) {
	symbols := hack.NewSymbolTable()
	parser := NewParser(NewLexer(src), symbols)

	items := []hack.Item{}

	for parser.Scan() {
		switch stmt := parser.Stmt().(type) {
		case Addr:
			addr, err := hack.NumAddr(stmt.Addr)
			if err != nil {
				return nil, err
			}
			items = append(items, addr)

		case UnresolvedAddr:
			items = append(items, hack.NameAddr(stmt.Name))

		case Assign:
			inst, err := hack.NewInst(stmt.Dest, stmt.Comp, hack.JumpNull)
			if err != nil {
				return nil, err
			}
			items = append(items, inst)

		case Branch:
			inst, err := hack.NewInst(hack.DestNull, stmt.Comp, stmt.Jump)
			if err != nil {
				return nil, err
			}
			items = append(items, inst)

		case Inst:
			inst, err := hack.NewInst(stmt.Dest, stmt.Comp, stmt.Jump)
			if err != nil {
				return nil, err
			}
			items = append(items, inst)
		}
	}

	if err := parser.Err(); err != nil {
		return nil, err
	}

	return hack.NewProgram(items, symbols), nil
}
