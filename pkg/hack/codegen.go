package hack

import "fmt"

// ----------------------------------------------------------------------------
// Programs

// In memory representation of a Hack program: the ordered list of A and C
// instructions plus the symbol table that resolves symbolic addresses. Label
// declarations never appear in the item list, the parser sinks them into the
// symbol table before the program is built.

// Just used to put together A and C instructions in the same datatype, use a
// type switch on 'Addr' and 'Inst' to disambiguate.
type Item interface{}

type Program struct {
	items   []Item
	symbols *SymbolTable
}

// Initializes and returns a 'Program' from its parts. A nil symbol table is
// replaced with an empty one, which is what disassembled programs carry.
func NewProgram(items []Item, symbols *SymbolTable) *Program {
	if symbols == nil {
		symbols = NewSymbolTable()
	}
	return &Program{items: items, symbols: symbols}
}

// The ordered A and C instructions of the program.
func (p *Program) Items() []Item { return p.items }

// The program's symbol table. Encoding mutates it: variables are allocated on
// first use.
func (p *Program) Symbols() *SymbolTable { return p.symbols }

// ----------------------------------------------------------------------------
// Code generation

// Each encoder below is a single-pass iterator over the program in the
// bufio.Scanner mold: 'Scan' advances to the next emitted unit, the accessor
// returns it, 'Err' reports the terminating error once 'Scan' says false.
// Symbolic addresses are resolved against the symbol table as they are
// reached, allocating RAM slots for fresh variables, so driving any encoder to
// completion completes the second assembly pass. The item list itself is never
// copied and an abandoned encoder holds no state beyond its cursor.

// Resolves one item down to its 16 bit machine word.
func (p *Program) encodeItem(item Item) (uint16, error) {
	switch it := item.(type) {
	case Addr:
		if !it.Unresolved() {
			return it.Value(), nil
		}
		addr, err := p.symbols.Resolve(it.Name())
		if err != nil {
			return 0, UnresolvedSymbolError{Name: it.Name(), Err: err}
		}
		return addr, nil
	case Inst:
		return it.Encode(), nil
	default:
		return 0, fmt.Errorf("unrecognized program item '%T'", item)
	}
}

// Binary encoder: two bytes per instruction, big-endian, no separators.
type BinEncoder struct {
	prog *Program
	next int
	word [2]byte
	err  error
}

// Creates a binary encoder positioned before the program's first instruction.
func (p *Program) EncodeBin() *BinEncoder {
	return &BinEncoder{prog: p}
}

// Advances to the next two-byte chunk. Returns false when the program is
// exhausted or an item fails to resolve; check 'Err' to tell the two apart.
func (e *BinEncoder) Scan() bool {
	if e.err != nil || e.next >= len(e.prog.items) {
		return false
	}

	word, err := e.prog.encodeItem(e.prog.items[e.next])
	if err != nil {
		e.err = err
		return false
	}

	e.word[0] = byte(word >> 8)
	e.word[1] = byte(word)
	e.next++
	return true
}

// The chunk produced by the last successful 'Scan'. The slice is only valid
// until the next call.
func (e *BinEncoder) Bytes() []byte { return e.word[:] }

func (e *BinEncoder) Err() error { return e.err }

// Bintext encoder: sixteen ASCII '0'/'1' characters plus a newline per
// instruction, most significant bit first.
type BintextEncoder struct {
	prog *Program
	next int
	line [17]byte
	err  error
}

// Creates a bintext encoder positioned before the program's first instruction.
func (p *Program) EncodeBintext() *BintextEncoder {
	return &BintextEncoder{prog: p}
}

// Advances to the next 17-byte line.
func (e *BintextEncoder) Scan() bool {
	if e.err != nil || e.next >= len(e.prog.items) {
		return false
	}

	word, err := e.prog.encodeItem(e.prog.items[e.next])
	if err != nil {
		e.err = err
		return false
	}

	for bit := 0; bit < 16; bit++ {
		e.line[bit] = '0' + byte(word>>(15-bit)&1)
	}
	e.line[16] = '\n'
	e.next++
	return true
}

// The line produced by the last successful 'Scan', newline included. The slice
// is only valid until the next call.
func (e *BintextEncoder) Bytes() []byte { return e.line[:] }

func (e *BintextEncoder) Err() error { return e.err }

// Source encoder: canonical assembly text, one statement per line. Unlike the
// machine-code encoders it resolves nothing, symbolic addresses render as
// '@name' and resolved ones as '@decimal', so it never touches the symbol
// table and never fails.
type SourceEncoder struct {
	prog *Program
	next int
	line string
}

// Creates a source encoder positioned before the program's first instruction.
func (p *Program) EncodeSource() *SourceEncoder {
	return &SourceEncoder{prog: p}
}

// Advances to the next assembly line.
func (e *SourceEncoder) Scan() bool {
	if e.next >= len(e.prog.items) {
		return false
	}

	switch it := e.prog.items[e.next].(type) {
	case Addr:
		e.line = it.String()
	case Inst:
		e.line = it.String()
	}
	e.next++
	return true
}

// The line produced by the last successful 'Scan', without a newline.
func (e *SourceEncoder) Text() string { return e.line }
