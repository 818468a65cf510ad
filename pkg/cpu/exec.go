// Package cpu implements the intcode execution engine.
package cpu

import (
	"io"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/oisee/intcode/pkg/inst"
)

// TraceFunc represents a callback handler for debug trace output.
// It is called with every decoded instruction before it executes.
type TraceFunc func(cursor int, instr inst.Instruction)

// Machine runs one program on its own copy of memory.
type Machine struct {
	mem    Memory    // Working copy; never shared with the caller.
	cursor int       // Address of the next instruction.
	steps  int       // Instructions executed, HALT included.
	trace  TraceFunc // Handler for debug trace output.
	halted bool
}

// New creates a machine for a private copy of mem.
// Optionally with the given debug trace handler.
func New(mem Memory, trace TraceFunc) *Machine {
	if trace == nil {
		trace = func(int, inst.Instruction) { /* nop */ }
	}
	return &Machine{
		mem:   mem.Clone(),
		trace: trace,
	}
}

// Memory returns the machine's working memory.
func (m *Machine) Memory() Memory { return m.mem }

// Cursor returns the address of the next instruction.
func (m *Machine) Cursor() int { return m.cursor }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int { return m.steps }

// Step performs a single execution step.
// Returns io.EOF once the program has reached HALT.
func (m *Machine) Step() error {
	if m.halted {
		return io.EOF
	}
	if m.cursor >= len(m.mem) {
		return NewError(m.cursor, ErrOutOfBounds, "reached end of memory (%d cells) without HALT", len(m.mem))
	}

	end := min(m.cursor+inst.Stride, len(m.mem))
	instr, err := inst.Decode(m.mem[m.cursor:end])
	switch err {
	case nil:
	case inst.ErrUnknownOpcode:
		return NewError(m.cursor, ErrProcessing, "unknown opcode %d", m.mem[m.cursor])
	default:
		return NewError(m.cursor, ErrOutOfBounds, "instruction needs %d cells, %d remain",
			inst.Stride, len(m.mem)-m.cursor)
	}

	m.trace(m.cursor, instr)
	m.steps++

	if _, ok := instr.(inst.Halt); ok {
		m.halted = true
		return io.EOF
	}
	if err := Exec(m.mem, instr); err != nil {
		return &Error{Cursor: m.cursor, Msg: instr.String(), Err: err}
	}

	m.cursor += inst.Stride
	return nil
}

// Run steps the machine until it halts and returns the final memory.
// On failure no memory is returned.
func (m *Machine) Run() (Memory, error) {
	for {
		err := m.Step()
		if err == io.EOF {
			return m.mem, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Run executes program on a copy of mem and returns the final memory.
// mem itself is never modified.
func Run(mem Memory) (Memory, error) {
	return New(mem, nil).Run()
}

// Exec applies a single instruction to mem. Operands are addresses.
// A result that does not fit in a cell is ErrOverflow and leaves mem unchanged.
// HALT has no effect.
func Exec(mem Memory, instr inst.Instruction) error {
	switch i := instr.(type) {
	case inst.Add:
		return execBinary(mem, i.A, i.B, i.Dest, add)
	case inst.Multiply:
		return execBinary(mem, i.A, i.B, i.Dest, mul)
	}
	return nil
}

func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// execBinary stores op(mem[a], mem[b]) at mem[dest].
func execBinary(mem Memory, a, b, dest uint64, op func(a, b uint64) (uint64, bool)) error {
	va, err := mem.Load(a)
	if err != nil {
		return errors.Wrapf(err, "read [%d]", a)
	}
	vb, err := mem.Load(b)
	if err != nil {
		return errors.Wrapf(err, "read [%d]", b)
	}
	v, ok := op(va, vb)
	if !ok {
		return errors.Wrapf(ErrOverflow, "%d, %d", va, vb)
	}
	if err := mem.Store(dest, v); err != nil {
		return errors.Wrapf(err, "write [%d]", dest)
	}
	return nil
}
