package hack

// ----------------------------------------------------------------------------
// Predefined symbols

// This table resolves every name the Hack specs predefine, without a defining
// label: the VM register aliases, the named general purpose registers and the
// memory mapped I/O locations. Note the aliasing: 'SP' and 'R0' are both 0,
// 'LCL' and 'R1' both 1, and so on through 'THAT'/'R4'.
var predefined = map[string]uint16{
	// Virtual Machine specific aliases (see project 7)
	"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
	// Named general purpose registers
	"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5,
	"R6": 6, "R7": 7, "R8": 8, "R9": 9, "R10": 10, "R11": 11,
	"R12": 12, "R13": 13, "R14": 14, "R15": 15,
	// Memory mapped I/O locations
	"SCREEN": 16384, "KBD": 24576,
}

// Looks up a predefined Hack symbol (e.g. "SP", "R13", "KBD").
func Predefined(name string) (uint16, bool) {
	addr, found := predefined[name]
	return addr, found
}

// ----------------------------------------------------------------------------
// Symbol table

// Maps user defined names to RAM/ROM addresses.
//
// Labels are bound by the parser during the first pass; variables are allocated
// lazily by the encoders during the second pass, taking the next free RAM slot
// from 16 onwards in first-use order. Predefined symbols live in their own
// table above and are resolved before this one is ever consulted, so a label
// can never shadow 'SP' or 'KBD'.
type SymbolTable struct {
	symbols map[string]uint16
	nextVar uint16
}

const varBase uint16 = 16 // First RAM address available to variables.

// Initializes and returns an empty 'SymbolTable'.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: map[string]uint16{}, nextVar: varBase}
}

// Binds 'name' to 'addr'. Binding an existing name overwrites it; callers that
// must refuse duplicates (label definitions) check for them before binding.
func (st *SymbolTable) Define(name string, addr uint16) {
	st.symbols[name] = addr
}

// Looks up a previously bound label or variable.
func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, found := st.symbols[name]
	return addr, found
}

// The number of bound names.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Resolves 'name' to an address, treating an unknown name as a fresh variable:
// the next free RAM slot at or above 16 is bound to it, so every later
// reference to the same name lands on the same slot. Once the 15 bit address
// space is exhausted, 'ErrAddressSpaceExhausted' is returned.
func (st *SymbolTable) Resolve(name string) (uint16, error) {
	if addr, found := st.symbols[name]; found {
		return addr, nil
	}

	if st.nextVar > MaxAddress {
		return 0, ErrAddressSpaceExhausted
	}

	addr := st.nextVar
	st.symbols[name] = addr
	st.nextVar++
	return addr, nil
}
