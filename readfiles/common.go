package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NmToAngstrom converts GROMACS lengths to the Å used by the interaction code.
const NmToAngstrom = 10.

// KcalToKJ converts LAMMPS "real" energies to kJ/mol.
const KcalToKJ = 4.184

// LJ holds the Lennard-Jones parameters of one atom type.
type LJ struct {
	Epsilon float64 // kJ/mol
	Sigma   float64 // Å
}

// lineReader counts lines so parse errors can point at them.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
	text    string
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (lr *lineReader) next() bool {
	if !lr.scanner.Scan() {
		return false
	}
	lr.line++
	lr.text = lr.scanner.Text()
	return true
}

func (lr *lineReader) err() error {
	return lr.scanner.Err()
}

func (lr *lineReader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", lr.line, fmt.Sprintf(format, args...))
}

func parseFloats(fields []string) (vals []float64, err error) {
	vals = make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, err
		}
	}
	return
}

// stripComment drops everything from the first occurrence of marker.
func stripComment(line, marker string) string {
	if i := strings.Index(line, marker); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func withFile(filename string, parse func(r io.Reader) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err = parse(file); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}
