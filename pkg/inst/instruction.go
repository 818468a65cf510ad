package inst

import (
	"errors"
	"fmt"
)

// OpCode is the integer tag in the first cell of an instruction.
type OpCode uint64

// Known opcodes.
const (
	ADD  OpCode = 1  // dest <- mem[a] + mem[b]
	MUL  OpCode = 2  // dest <- mem[a] * mem[b]
	HALT OpCode = 99 // stop execution
)

// Decode errors. They carry no position; the caller knows where it decoded.
var (
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrTruncated     = errors.New("truncated instruction")
)

// Instruction is one decoded instruction. The set of implementations is
// closed: Add, Multiply and Halt.
type Instruction interface {
	Op() OpCode
	String() string

	isInstruction()
}

// Add stores mem[A] + mem[B] at mem[Dest].
// A, B and Dest are always addresses, never immediates.
type Add struct {
	A, B, Dest uint64
}

// Multiply stores mem[A] * mem[B] at mem[Dest].
type Multiply struct {
	A, B, Dest uint64
}

// Halt terminates execution.
type Halt struct{}

func (Add) Op() OpCode      { return ADD }
func (Multiply) Op() OpCode { return MUL }
func (Halt) Op() OpCode     { return HALT }

func (i Add) String() string      { return disasmBinary(ADD, i.A, i.B, i.Dest) }
func (i Multiply) String() string { return disasmBinary(MUL, i.A, i.B, i.Dest) }
func (Halt) String() string       { return Mnemonic(HALT) }

func (Add) isInstruction()      {}
func (Multiply) isInstruction() {}
func (Halt) isInstruction()     {}

// Decode decodes the instruction starting at code[0].
// Halt needs a single cell; Add and Multiply need Stride cells.
func Decode(code []uint64) (Instruction, error) {
	if len(code) == 0 {
		return nil, ErrTruncated
	}
	op := OpCode(code[0])
	if !Known(op) {
		return nil, ErrUnknownOpcode
	}
	if len(code) < Width(op) {
		return nil, ErrTruncated
	}

	switch op {
	case ADD:
		return Add{A: code[1], B: code[2], Dest: code[3]}, nil
	case MUL:
		return Multiply{A: code[1], B: code[2], Dest: code[3]}, nil
	default:
		return Halt{}, nil
	}
}

func disasmBinary(op OpCode, a, b, dest uint64) string {
	return fmt.Sprintf("%s [%d], [%d] -> [%d]", Mnemonic(op), a, b, dest)
}
