package asm

import (
	"github.com/fredmorcos/has/pkg/hack"
)

// ----------------------------------------------------------------------------
// Lexer

// Lexer turns an assembly source buffer into a one-shot stream of tokens,
// driven in the bufio.Scanner mold:
//
//	lex := asm.NewLexer(src)
//	for lex.Scan() {
//		tok := lex.Token()
//		...
//	}
//	if err := lex.Err(); err != nil { ... }
//
// Any byte at or below 0x20 is whitespace and '//' starts a line comment; both
// are skipped with positions advanced. Errors are terminal: after the first
// one 'Scan' keeps returning false and 'Err' keeps returning it.
type Lexer struct {
	src  []byte
	off  int
	pos  Pos
	tok  Token
	err  error
	semi bool // Whether the previous token was a semicolon.
}

// Initializes a lexer over a source buffer.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, pos: StartPos()}
}

// The token produced by the last successful 'Scan'.
func (l *Lexer) Token() Token { return l.tok }

// The error that terminated scanning, nil on normal exhaustion.
func (l *Lexer) Err() error { return l.err }

// Consumes the current byte.
func (l *Lexer) advance() {
	l.pos.Advance(l.src[l.off])
	l.off++
}

// Mnemonic chunks are maximal runs of the C instruction operator bytes plus
// every identifier byte.
func isMnemonicByte(b byte) bool {
	switch b {
	case '!', '-', '+', '&', '|':
		return true
	}
	return isIdentByte(b) || b >= '0' && b <= '9'
}

// Identifiers start with a non-digit identifier byte and continue with
// identifier bytes or digits.
func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' ||
		b == '_' || b == '.' || b == '$' || b == ':'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Advances to the next token. Returns false at end of input or on the first
// malformed byte; 'Err' tells the two apart.
func (l *Lexer) Scan() bool {
	if l.err != nil || !l.skipTrivia() {
		return false
	}

	afterSemi := l.semi
	l.semi = false

	start := l.pos
	switch b := l.src[l.off]; {
	case b == '@':
		l.advance()
		return l.scanAddr(start)
	case b == '(':
		l.advance()
		return l.scanLabel(start)
	case b == ';':
		l.advance()
		l.tok = Token{Kind: TokSemi, Pos: start}
		l.semi = true
		return true
	case isMnemonicByte(b):
		return l.scanMnemonic(start, afterSemi)
	default:
		l.err = newError(start, ErrInvalidByte, "invalid byte %q", b)
		return false
	}
}

// Skips whitespace and comments. Returns false at end of input or when a lone
// '/' is hit, which is not the start of anything.
func (l *Lexer) skipTrivia() bool {
	for l.off < len(l.src) {
		b := l.src[l.off]

		if b <= 0x20 {
			l.advance()
			continue
		}

		if b == '/' {
			if l.off+1 >= len(l.src) || l.src[l.off+1] != '/' {
				l.err = newError(l.pos, ErrInvalidByte, "invalid byte %q", b)
				return false
			}
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.advance()
			}
			continue
		}

		return true
	}
	return false
}

// Reads a maximal identifier run starting at the current byte. The caller has
// checked the first byte already.
func (l *Lexer) readIdent() string {
	from := l.off
	for l.off < len(l.src) && (isIdentByte(l.src[l.off]) || isDigit(l.src[l.off])) {
		l.advance()
	}
	return string(l.src[from:l.off])
}

// Scans the address following an '@' at 'start': either a decimal constant
// fitting in 15 bits or a symbol name.
func (l *Lexer) scanAddr(start Pos) bool {
	if l.off >= len(l.src) {
		l.err = newError(l.pos, ErrInvalidByte, "expecting an address after '@'")
		return false
	}

	b := l.src[l.off]

	if isDigit(b) {
		numStart := l.pos
		value := uint32(0)
		for l.off < len(l.src) && isDigit(l.src[l.off]) {
			value = value*10 + uint32(l.src[l.off]-'0')
			if value > uint32(hack.MaxAddress) {
				l.err = newError(numStart, ErrNumericOverflow, "address does not fit in 15 bits")
				return false
			}
			l.advance()
		}
		l.tok = Token{Kind: TokNumAddr, Pos: start, Addr: uint16(value)}
		return true
	}

	if !isIdentByte(b) {
		l.err = newError(l.pos, ErrInvalidByte, "invalid byte %q in address", b)
		return false
	}

	l.tok = Token{Kind: TokNameAddr, Pos: start, Name: l.readIdent()}
	return true
}

// Scans the label name and closing parenthesis following a '(' at 'start'.
func (l *Lexer) scanLabel(start Pos) bool {
	if l.off >= len(l.src) || !isIdentByte(l.src[l.off]) {
		l.err = newError(l.pos, ErrUnterminatedLabel, "expecting a label name after '('")
		return false
	}

	name := l.readIdent()

	if l.off >= len(l.src) || l.src[l.off] != ')' {
		l.err = newError(l.pos, ErrUnterminatedLabel, "label %q opened at %s is not closed", name, start)
		return false
	}

	l.advance()
	l.tok = Token{Kind: TokLabel, Pos: start, Name: name}
	return true
}

// Scans a C instruction mnemonic chunk at 'start' and classifies it: a chunk
// followed by '=' names a destination, a chunk right after a semicolon names a
// jump, anything else names a computation.
func (l *Lexer) scanMnemonic(start Pos, afterSemi bool) bool {
	from := l.off
	for l.off < len(l.src) && isMnemonicByte(l.src[l.off]) {
		l.advance()
	}
	chunk := string(l.src[from:l.off])

	if l.off < len(l.src) && l.src[l.off] == '=' {
		dest, found := hack.DestFromMnemonic(chunk)
		if !found {
			l.err = newError(start, ErrUnknownDest, "unknown destination %q", chunk)
			return false
		}
		l.advance()
		l.tok = Token{Kind: TokDest, Pos: start, Dest: dest}
		return true
	}

	if afterSemi {
		jump, found := hack.JumpFromMnemonic(chunk)
		if !found {
			l.err = newError(start, ErrUnknownJump, "unknown jump %q", chunk)
			return false
		}
		l.tok = Token{Kind: TokJump, Pos: start, Jump: jump}
		return true
	}

	comp, found := hack.CompFromMnemonic(chunk)
	if !found {
		l.err = newError(start, ErrUnknownComp, "unknown computation %q", chunk)
		return false
	}
	l.tok = Token{Kind: TokComp, Pos: start, Comp: comp}
	return true
}
