package inst

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Stride is the number of cells the cursor advances after every
// non-halting instruction, regardless of how many operands it uses.
const Stride = 4

// Info holds static metadata for an opcode.
type Info struct {
	Mnemonic string // Assembly mnemonic (e.g., "ADD")
	Argc     int    // Number of operand cells following the opcode
}

// Catalog maps each known OpCode to its Info.
var Catalog = map[OpCode]Info{
	ADD:  {Mnemonic: "ADD", Argc: 3},
	MUL:  {Mnemonic: "MUL", Argc: 3},
	HALT: {Mnemonic: "HALT", Argc: 0},
}

// Known returns true if op is part of the instruction set.
func Known(op OpCode) bool {
	_, ok := Catalog[op]
	return ok
}

// Width returns the number of cells an instruction occupies (opcode + operands).
// Returns 0 for unknown opcodes.
func Width(op OpCode) int {
	info, ok := Catalog[op]
	if !ok {
		return 0
	}
	return 1 + info.Argc
}

// Mnemonic returns the assembly mnemonic for op, or "" if op is unknown.
func Mnemonic(op OpCode) string {
	return Catalog[op].Mnemonic
}

// Opcodes returns all known opcodes in ascending order.
func Opcodes() []OpCode {
	ops := maps.Keys(Catalog)
	slices.Sort(ops)
	return ops
}
