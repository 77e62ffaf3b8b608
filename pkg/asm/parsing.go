package asm

import (
	"github.com/fredmorcos/has/pkg/hack"
)

// ----------------------------------------------------------------------------
// Asm Parser

// Parser turns the token stream of a 'Lexer' into a one-shot stream of
// statements, driven like the lexer itself:
//
//	parser := asm.NewParser(lex, symbols)
//	for parser.Scan() {
//		stmt := parser.Stmt()
//		...
//	}
//	if err := parser.Err(); err != nil { ... }
//
// The parser is the first assembly pass. It keeps a running instruction index,
// which every A and C instruction advances and which equals the ROM address of
// the next instruction. Label declarations never appear as statements: they
// bind their name to the current index in the symbol table and the stream
// moves on. A symbolic address resolves immediately when it names a predefined
// symbol or an already declared label, and is deferred as 'UnresolvedAddr'
// otherwise; the encoders finish the job during the second pass.
type Parser struct {
	lex  *Lexer
	st   *hack.SymbolTable
	la   *Token // One token of look-ahead, pushed back by Assign parsing.
	idx  uint16
	defs map[string]Pos // Where each label was declared, for duplicate reports.
	stmt Stmt
	err  error
}

// Initializes a parser over a lexer. Label declarations are sunk into 'st' as
// they are encountered.
func NewParser(lex *Lexer, st *hack.SymbolTable) *Parser {
	return &Parser{lex: lex, st: st, defs: map[string]Pos{}}
}

// The statement produced by the last successful 'Scan'.
func (p *Parser) Stmt() Stmt { return p.stmt }

// The error that terminated parsing, nil on normal exhaustion.
func (p *Parser) Err() error { return p.err }

// Pulls the next token, favoring the pushed-back one. A lexing failure
// surfaces through 'p.err'.
func (p *Parser) next() (Token, bool) {
	if p.la != nil {
		t := *p.la
		p.la = nil
		return t, true
	}

	if p.lex.Scan() {
		return p.lex.Token(), true
	}

	p.err = p.lex.Err()
	return Token{}, false
}

// Advances to the next statement. Returns false at end of input or on the
// first malformed construct; 'Err' tells the two apart.
func (p *Parser) Scan() bool {
	if p.err != nil {
		return false
	}

	for {
		t, ok := p.next()
		if !ok {
			return false
		}

		switch t.Kind {
		case TokNumAddr:
			p.idx++
			p.stmt = Addr{Pos: t.Pos, Addr: t.Addr}
			return true

		case TokNameAddr:
			p.idx++
			if addr, found := hack.Predefined(t.Name); found {
				p.stmt = Addr{Pos: t.Pos, Addr: addr}
				return true
			}
			if addr, found := p.st.Lookup(t.Name); found {
				p.stmt = Addr{Pos: t.Pos, Addr: addr}
				return true
			}
			p.stmt = UnresolvedAddr{Pos: t.Pos, Name: t.Name}
			return true

		case TokLabel:
			// Labels bind to the current index and are transparent to the
			// statement stream.
			if _, found := hack.Predefined(t.Name); found {
				p.err = newError(t.Pos, ErrDuplicateLabel,
					"label %q would shadow a predefined symbol", t.Name)
				return false
			}
			if prior, found := p.defs[t.Name]; found {
				p.err = &Error{Pos: t.Pos, Kind: ErrDuplicateLabel, Label: t.Name, Prior: prior}
				return false
			}
			p.defs[t.Name] = t.Pos
			p.st.Define(t.Name, p.idx)

		case TokDest:
			p.idx++
			return p.scanAssign(t)

		case TokComp:
			p.idx++
			return p.scanBranch(t)

		case TokJump:
			p.err = newError(t.Pos, ErrFreestandingJump,
				"jump %s must be preceded by a computation", t.Jump)
			return false

		case TokSemi:
			p.err = newError(t.Pos, ErrFreestandingSemicolon, "freestanding semicolon")
			return false
		}
	}
}

// Parses the remainder of a statement opened by a destination token: either
// 'dest=comp' or the full 'dest=comp;jump'.
func (p *Parser) scanAssign(dest Token) bool {
	comp, ok := p.next()
	if !ok && p.err != nil {
		return false
	}
	if !ok || comp.Kind != TokComp {
		// Point at the '=' right after the destination mnemonic.
		eq := Pos{Line: dest.Pos.Line, Col: dest.Pos.Col + len(dest.Dest.String())}
		p.err = newError(eq, ErrDestWithoutComp,
			"destination %s must be followed by a computation", dest.Dest)
		return false
	}

	nxt, ok := p.next()
	if !ok {
		if p.err != nil {
			return false
		}
		p.stmt = Assign{DestPos: dest.Pos, Dest: dest.Dest, CompPos: comp.Pos, Comp: comp.Comp}
		return true
	}

	if nxt.Kind != TokSemi {
		p.la = &nxt
		p.stmt = Assign{DestPos: dest.Pos, Dest: dest.Dest, CompPos: comp.Pos, Comp: comp.Comp}
		return true
	}

	jump, ok := p.next()
	if !ok && p.err != nil {
		return false
	}
	if !ok || jump.Kind != TokJump {
		p.err = newError(nxt.Pos, ErrCompWithoutJump, "expecting a jump after ';'")
		return false
	}

	p.stmt = Inst{
		DestPos: dest.Pos, Dest: dest.Dest,
		CompPos: comp.Pos, Comp: comp.Comp,
		JumpPos: jump.Pos, Jump: jump.Jump,
	}
	return true
}

// Parses the remainder of a statement opened by a computation token, which
// must be a 'comp;jump' branch: a computation alone neither stores nor jumps.
func (p *Parser) scanBranch(comp Token) bool {
	semi, ok := p.next()
	if !ok && p.err != nil {
		return false
	}
	if !ok || semi.Kind != TokSemi {
		p.err = newError(comp.Pos, ErrCompWithoutJump,
			"computation %s must be followed by a jump", comp.Comp)
		return false
	}

	jump, ok := p.next()
	if !ok && p.err != nil {
		return false
	}
	if !ok || jump.Kind != TokJump {
		p.err = newError(semi.Pos, ErrCompWithoutJump, "expecting a jump after ';'")
		return false
	}

	p.stmt = Branch{CompPos: comp.Pos, Comp: comp.Comp, JumpPos: jump.Pos, Jump: jump.Jump}
	return true
}
