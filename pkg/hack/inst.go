package hack

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// C Instructions

// In memory representation of a C Instruction for the Hack architecture spec.
//
// The C instruction handles the computation side of the Hack computer: it tells
// the ALU what to compute ('Comp'), where to store the result ('Dest') and on
// what premise to branch ('Jump'). A C instruction whose destination and jump
// are both null computes a value only to discard it, so construction rejects
// that shape; decoding tolerates it, since the bit pattern is well formed.
type Inst struct {
	dest Dest
	comp Comp
	jump Jump
}

// Initializes and returns a new 'Inst'. At least one of 'dest' and 'jump'
// must be non-null, otherwise 'ErrMissingDestAndJump' is returned.
func NewInst(dest Dest, comp Comp, jump Jump) (Inst, error) {
	if dest == DestNull && jump == JumpNull {
		return Inst{}, ErrMissingDestAndJump
	}
	return Inst{dest: dest, comp: comp, jump: jump}, nil
}

func (i Inst) Dest() Dest { return i.dest }
func (i Inst) Comp() Comp { return i.comp }
func (i Inst) Jump() Jump { return i.jump }

// Packs the instruction into its 16 bit word:
//
//	bit: 15 14 13 | 12 | 11 10 09 08 07 06 | 05 04 03 | 02 01 00
//	      1  1  1 |  a |       c1..c6      | d1 d2 d3 | j1 j2 j3
//
// The top three bits are always 1; the 'a' bit is the top bit of 'Comp'.
func (i Inst) Encode() uint16 {
	return 0b111<<13 | uint16(i.comp)<<6 | uint16(i.dest)<<3 | uint16(i.jump)
}

// Unpacks a C instruction from a 16 bit word. Any field whose bits name no
// mnemonic yields an 'InvalidComp/Dest/JumpError'; the null-dest null-jump
// no-op is accepted here even though 'NewInst' refuses to build it.
func DecodeInst(v uint16) (Inst, error) {
	comp, err := CompFromBits(v >> 6 & 0b1111111)
	if err != nil {
		return Inst{}, err
	}

	dest, err := DestFromBits(v >> 3 & 0b111)
	if err != nil {
		return Inst{}, err
	}

	jump, err := JumpFromBits(v & 0b111)
	if err != nil {
		return Inst{}, err
	}

	return Inst{dest: dest, comp: comp, jump: jump}, nil
}

// Renders the canonical assembly text: 'dest=' is omitted when the destination
// is null and ';jump' when the jump is null; the computation always appears.
func (i Inst) String() string {
	var sb strings.Builder

	if i.dest != DestNull {
		sb.WriteString(i.dest.String())
		sb.WriteByte('=')
	}

	sb.WriteString(i.comp.String())

	if i.jump != JumpNull {
		sb.WriteByte(';')
		sb.WriteString(i.jump.String())
	}

	return sb.String()
}

// ----------------------------------------------------------------------------
// A Instructions

// In memory representation of an A Instruction for the Hack architecture spec.
//
// The A instruction loads a location into the address register. The location is
// either a resolved 15 bit value or a still-symbolic name that the symbol table
// resolves (or allocates, for variables) when the program is encoded. A name is
// never empty, so the zero-value name marks the resolved case.
type Addr struct {
	name string
	addr uint16
}

// Initializes an 'Addr' from an already resolved value. Values over 'MaxAddress'
// do not fit in the 15 address bits and are rejected.
func NumAddr(v uint16) (Addr, error) {
	if v > MaxAddress {
		return Addr{}, AddressRangeError{Value: uint32(v)}
	}
	return Addr{addr: v}, nil
}

// Initializes an 'Addr' from a yet-unresolved symbol name.
func NameAddr(name string) Addr {
	return Addr{name: name}
}

// Reports whether the address still awaits symbol resolution.
func (a Addr) Unresolved() bool { return a.name != "" }

// The symbol name of an unresolved address, "" for a resolved one.
func (a Addr) Name() string { return a.name }

// The value of a resolved address; meaningless while 'Unresolved' holds.
func (a Addr) Value() uint16 { return a.addr }

// Renders the canonical assembly text: '@name' while unresolved, '@decimal'
// once resolved.
func (a Addr) String() string {
	if a.name != "" {
		return fmt.Sprintf("@%s", a.name)
	}
	return fmt.Sprintf("@%d", a.addr)
}
