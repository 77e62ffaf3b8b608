package hack

// ----------------------------------------------------------------------------
// General information

// This section contains some general information about the Hack instruction set.
//
// The package models the two instruction families of the Hack computer: the A
// instruction (load a 15 bit address or constant into the address register) and
// the C instruction (ALU operation with optional destination and jump). Each C
// instruction is built from three independent fields, 'Dest', 'Comp' and 'Jump',
// whose values below are their exact bit encodings so that assembling a word is
// plain shifting and or-ing.

const MaxAddress uint16 = (1 << 15) - 1 // Highest address expressible in an A instruction.

// ----------------------------------------------------------------------------
// Destination field

// The 'Dest' field selects which registers receive the ALU output. Its three
// bits are, from most to least significant, A, D and M; every one of the eight
// combinations is legal, the zero value meaning "store nowhere".
type Dest uint16

const (
	DestNull Dest = 0b000
	DestM    Dest = 0b001
	DestD    Dest = 0b010
	DestMD   Dest = 0b011
	DestA    Dest = 0b100
	DestAM   Dest = 0b101
	DestAD   Dest = 0b110
	DestAMD  Dest = 0b111
)

var destNames = map[Dest]string{
	DestNull: "", DestM: "M", DestD: "D", DestMD: "MD",
	DestA: "A", DestAM: "AM", DestAD: "AD", DestAMD: "AMD",
}

var destMnemonics = map[string]Dest{
	"M": DestM, "D": DestD, "MD": DestMD,
	"A": DestA, "AM": DestAM, "AD": DestAD, "AMD": DestAMD,
}

func (d Dest) String() string { return destNames[d] }

// Looks up a destination mnemonic (e.g. "AM"). The empty mnemonic is not a
// spellable destination, an instruction simply omits the 'dest=' part instead.
func DestFromMnemonic(s string) (Dest, bool) {
	d, found := destMnemonics[s]
	return d, found
}

// Recovers a 'Dest' from its three bit encoding; 'v' is not masked, so a value
// above 0b111 is rejected.
func DestFromBits(v uint16) (Dest, error) {
	if v > uint16(DestAMD) {
		return DestNull, InvalidDestError{Bits: v}
	}
	return Dest(v), nil
}

// ----------------------------------------------------------------------------
// Computation field

// The 'Comp' field selects the ALU operation. Its seven bits are the 'a' bit
// (which swaps the A register for the memory word M as the second operand)
// followed by the six control bits c1..c6. Only 28 of the 128 patterns name a
// real computation, everything else is rejected on decode.
type Comp uint16

const (
	CompZero   Comp = 0b0101010 // 0
	CompOne    Comp = 0b0111111 // 1
	CompNegOne Comp = 0b0111010 // -1
	CompD      Comp = 0b0001100 // D
	CompA      Comp = 0b0110000 // A
	CompNotD   Comp = 0b0001101 // !D
	CompNotA   Comp = 0b0110001 // !A
	CompNegD   Comp = 0b0001111 // -D
	CompNegA   Comp = 0b0110011 // -A
	CompDPlus1 Comp = 0b0011111 // D+1
	CompAPlus1 Comp = 0b0110111 // A+1
	CompDMin1  Comp = 0b0001110 // D-1
	CompAMin1  Comp = 0b0110010 // A-1
	CompDPlusA Comp = 0b0000010 // D+A
	CompDMinA  Comp = 0b0010011 // D-A
	CompAMinD  Comp = 0b0000111 // A-D
	CompDAndA  Comp = 0b0000000 // D&A
	CompDOrA   Comp = 0b0010101 // D|A

	CompM      Comp = 0b1110000 // M
	CompNotM   Comp = 0b1110001 // !M
	CompNegM   Comp = 0b1110011 // -M
	CompMPlus1 Comp = 0b1110111 // M+1
	CompMMin1  Comp = 0b1110010 // M-1
	CompDPlusM Comp = 0b1000010 // D+M
	CompDMinM  Comp = 0b1010011 // D-M
	CompMMinD  Comp = 0b1000111 // M-D
	CompDAndM  Comp = 0b1000000 // D&M
	CompDOrM   Comp = 0b1010101 // D|M
)

var compNames = map[Comp]string{
	// - Constants and identities
	CompZero: "0", CompOne: "1", CompNegOne: "-1",
	CompD: "D", CompA: "A", CompM: "M",
	// - Binary and numerical negations
	CompNotD: "!D", CompNotA: "!A", CompNotM: "!M",
	CompNegD: "-D", CompNegA: "-A", CompNegM: "-M",
	// - Increment and decrement operations
	CompDPlus1: "D+1", CompAPlus1: "A+1", CompMPlus1: "M+1",
	CompDMin1: "D-1", CompAMin1: "A-1", CompMMin1: "M-1",
	// - Register with register operations
	CompDPlusA: "D+A", CompDPlusM: "D+M",
	CompDMinA: "D-A", CompDMinM: "D-M",
	CompAMinD: "A-D", CompMMinD: "M-D",
	// - Bitwise register with register operations
	CompDAndA: "D&A", CompDAndM: "D&M",
	CompDOrA: "D|A", CompDOrM: "D|M",
}

var compMnemonics = func() map[string]Comp {
	m := make(map[string]Comp, len(compNames))
	for comp, name := range compNames {
		m[name] = comp
	}
	return m
}()

func (c Comp) String() string { return compNames[c] }

// Looks up a computation mnemonic (e.g. "D+1", "M", "-1").
func CompFromMnemonic(s string) (Comp, bool) {
	c, found := compMnemonics[s]
	return c, found
}

// Recovers a 'Comp' from its seven bit encoding; 'v' is not masked, so a value
// that names no computation, including any above 0b1111111, is rejected.
func CompFromBits(v uint16) (Comp, error) {
	if _, found := compNames[Comp(v)]; !found {
		return 0, InvalidCompError{Bits: v}
	}
	return Comp(v), nil
}

// ----------------------------------------------------------------------------
// Jump field

// The 'Jump' field selects the branch condition on the ALU output. Its three
// bits are the "less than", "equal" and "greater than" flags; all eight
// combinations are legal, from never (null) to always (JMP).
type Jump uint16

const (
	JumpNull Jump = 0b000
	JumpJGT  Jump = 0b001
	JumpJEQ  Jump = 0b010
	JumpJGE  Jump = 0b011
	JumpJLT  Jump = 0b100
	JumpJNE  Jump = 0b101
	JumpJLE  Jump = 0b110
	JumpJMP  Jump = 0b111
)

var jumpNames = map[Jump]string{
	JumpNull: "", JumpJGT: "JGT", JumpJEQ: "JEQ", JumpJGE: "JGE",
	JumpJLT: "JLT", JumpJNE: "JNE", JumpJLE: "JLE", JumpJMP: "JMP",
}

var jumpMnemonics = map[string]Jump{
	"JGT": JumpJGT, "JEQ": JumpJEQ, "JGE": JumpJGE,
	"JLT": JumpJLT, "JNE": JumpJNE, "JLE": JumpJLE, "JMP": JumpJMP,
}

func (j Jump) String() string { return jumpNames[j] }

// Looks up a jump mnemonic (e.g. "JGE").
func JumpFromMnemonic(s string) (Jump, bool) {
	j, found := jumpMnemonics[s]
	return j, found
}

// Recovers a 'Jump' from its three bit encoding; 'v' is not masked, so a value
// above 0b111 is rejected.
func JumpFromBits(v uint16) (Jump, error) {
	if v > uint16(JumpJMP) {
		return JumpNull, InvalidJumpError{Bits: v}
	}
	return Jump(v), nil
}
