// Package loader reads intcode programs: comma-separated non-negative
// integers, optionally followed by whitespace.
package loader

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/oisee/intcode/pkg/cpu"
)

// ErrEmpty is returned for input that holds no values.
var ErrEmpty = errors.New("empty program")

// LoadFile reads and parses the program stored at path.
func LoadFile(path string) (cpu.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mem, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return mem, nil
}

// Parse reads a whole program from r.
func Parse(r io.Reader) (cpu.Memory, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read program")
	}
	return ParseString(string(b))
}

// ParseString parses text like "1,9,10,3,2,3,11,0,99,30,40,50".
// Whitespace around values and a single trailing comma are accepted.
func ParseString(text string) (cpu.Memory, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ",")
	if text == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(text, ",")
	mem := make(cpu.Memory, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d: cannot parse %q", i, part)
		}
		mem = append(mem, v)
	}
	return mem, nil
}
