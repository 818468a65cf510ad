package inst

import (
	"errors"
	"testing"
)

// TestCatalogCompleteness verifies every known opcode has a catalog entry.
func TestCatalogCompleteness(t *testing.T) {
	for _, op := range []OpCode{ADD, MUL, HALT} {
		info, ok := Catalog[op]
		if !ok {
			t.Fatalf("OpCode %d has no catalog entry", op)
		}
		if info.Mnemonic == "" {
			t.Errorf("OpCode %d has no mnemonic", op)
		}
	}
	if len(Catalog) != 3 {
		t.Errorf("catalog has %d entries, want 3", len(Catalog))
	}
}

func TestOpcodesSorted(t *testing.T) {
	got := Opcodes()
	want := []OpCode{ADD, MUL, HALT}
	if len(got) != len(want) {
		t.Fatalf("Opcodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Opcodes()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestWidth verifies instruction widths. Width is independent of Stride:
// HALT occupies one cell but ADD and MUL fill the whole stride.
func TestWidth(t *testing.T) {
	tests := []struct {
		op   OpCode
		want int
	}{
		{ADD, 4},
		{MUL, 4},
		{HALT, 1},
		{OpCode(3), 0},
	}
	for _, tc := range tests {
		if got := Width(tc.op); got != tc.want {
			t.Errorf("Width(%d) = %d, want %d", tc.op, got, tc.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		code []uint64
		want Instruction
		err  error
	}{
		{"add", []uint64{1, 9, 10, 3}, Add{A: 9, B: 10, Dest: 3}, nil},
		{"mul", []uint64{2, 3, 11, 0, 99}, Multiply{A: 3, B: 11, Dest: 0}, nil},
		{"halt", []uint64{99}, Halt{}, nil},
		{"halt ignores trailing cells", []uint64{99, 1, 2}, Halt{}, nil},
		{"unknown", []uint64{3, 0, 0, 0}, nil, ErrUnknownOpcode},
		{"zero opcode", []uint64{0, 0, 0, 0}, nil, ErrUnknownOpcode},
		{"truncated add", []uint64{1, 0, 0}, nil, ErrTruncated},
		{"empty", nil, nil, ErrTruncated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.code)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Decode(%v) error = %v, want %v", tc.code, err, tc.err)
			}
			if got != tc.want {
				t.Errorf("Decode(%v) = %#v, want %#v", tc.code, got, tc.want)
			}
		})
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{Add{A: 9, B: 10, Dest: 3}, "ADD [9], [10] -> [3]"},
		{Multiply{A: 3, B: 11, Dest: 0}, "MUL [3], [11] -> [0]"},
		{Halt{}, "HALT"},
	}
	for _, tc := range tests {
		if got := tc.instr.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestDisassemble(t *testing.T) {
	program := []uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}
	want := []Line{
		{0, "ADD [9], [10] -> [3]"},
		{4, "MUL [3], [11] -> [0]"},
		{8, "HALT"},
		{9, "DATA 30"},
		{10, "DATA 40"},
		{11, "DATA 50"},
	}
	got := Disassemble(program)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDisassembleStopsAtUnknownOpcode(t *testing.T) {
	got := Disassemble([]uint64{1, 0, 0, 0, 7, 5})
	want := []Line{
		{0, "ADD [0], [0] -> [0]"},
		{4, "DATA 7"},
		{5, "DATA 5"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
