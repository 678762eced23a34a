// This file provides functions for reading a truth table of hexadecimal
// output values.

package main

import (
	"bufio"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyTable is returned for a truth table with no rows.
	ErrEmptyTable = errors.New("truth table is empty")

	// ErrRowCount is returned for a truth table whose row count is not a
	// power of two.
	ErrRowCount = errors.New("truth-table row count is not a power of two")
)

// A Row is one line of a truth table: the input pattern that addresses it
// and the output pattern it produces.
type Row struct {
	Input  BitString
	Output BitString
}

// A TruthTable maps every n-bit input pattern, in ascending order, to an
// output pattern.  Rows[i].Input is always the NInputs-bit encoding of i.
type TruthTable struct {
	NInputs  int   // Number of input bits
	NOutputs int   // Number of output bits
	Rows     []Row // One row per input pattern
}

// inputWidth returns floor(log2(nRows)).
func inputWidth(nRows int) int {
	return bits.Len(uint(nRows)) - 1
}

// ReadTruthTable reads one hexadecimal output value per line and returns the
// corresponding truth table.  The number of input bits is inferred from the
// number of lines.  Values wider than nOut bits keep only their low nOut
// bits.
func ReadTruthTable(r io.Reader, nOut int) (TruthTable, error) {
	if nOut <= 0 || nOut > MaxWidth {
		return TruthTable{}, errors.Wrapf(ErrWidth, "output width %d", nOut)
	}

	// Read all lines, then drop blank lines trailing the table.
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return TruthTable{}, errors.Wrap(err, "read truth table")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	// Infer the input width.  Row i is addressed by the binary encoding of
	// i, so only power-of-two row counts address every row exactly once.
	nRows := len(lines)
	switch {
	case nRows == 0:
		return TruthTable{}, ErrEmptyTable
	case nRows == 1, nRows&(nRows-1) != 0:
		nIn := inputWidth(nRows)
		return TruthTable{}, errors.Wrapf(ErrRowCount,
			"%d rows (a %d-input table has %d rows, a %d-input table has %d)",
			nRows, nIn, 1<<uint(nIn), nIn+1, 1<<uint(nIn+1))
	}
	nIn := inputWidth(nRows)

	// Parse each row in turn.
	tt := TruthTable{
		NInputs:  nIn,
		NOutputs: nOut,
		Rows:     make([]Row, nRows),
	}
	for i, ln := range lines {
		if ln == "" {
			return TruthTable{}, errors.Errorf("line %d: missing output value", i+1)
		}
		v, err := strconv.ParseUint(ln, 16, 64)
		if err != nil {
			return TruthTable{}, errors.Wrapf(err, "line %d", i+1)
		}
		in, err := Encode(uint64(i), nIn)
		if err != nil {
			return TruthTable{}, err
		}
		out, err := Encode(v, nOut)
		if err != nil {
			return TruthTable{}, err
		}
		tt.Rows[i] = Row{Input: in, Output: out}
	}
	return tt, nil
}

// LoadTruthTable reads a truth table from the named file.
func LoadTruthTable(name string, nOut int) (TruthTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return TruthTable{}, err
	}
	defer f.Close()
	tt, err := ReadTruthTable(f, nOut)
	if err != nil {
		return TruthTable{}, errors.Wrap(err, name)
	}
	return tt, nil
}
