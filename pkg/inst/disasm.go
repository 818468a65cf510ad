package inst

import "strconv"

// Line is one line of disassembly output.
type Line struct {
	Addr int
	Text string
}

// Disassemble walks program from address 0 by Stride and returns one line
// per instruction. After Halt, or at the first cell that does not decode,
// every remaining cell is listed as a DATA line.
func Disassemble(program []uint64) []Line {
	var lines []Line
	addr := 0
	for addr < len(program) {
		instr, err := Decode(program[addr:])
		if err != nil {
			break
		}
		lines = append(lines, Line{Addr: addr, Text: instr.String()})
		if instr.Op() == HALT {
			addr++
			break
		}
		addr += Stride
	}
	for ; addr < len(program); addr++ {
		lines = append(lines, Line{Addr: addr, Text: "DATA " + strconv.FormatUint(program[addr], 10)})
	}
	return lines
}
