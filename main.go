/*
Generate a Verilog ROM from a truth table, replacing the outputs of rarely
observed input patterns with random values.
*/

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// notify is used to output error messages.
var notify *log.Logger

// info is used to output status messages.
var info *log.Logger

// outputMode is the permission mode of a generated Verilog file.
const outputMode = 0o644

// writeOutput writes data to the named file.  The file either receives all
// of data or is left untouched.
func writeOutput(name string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(outputMode); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// logCoverage reports how well the profiling trace covers the truth table.
func logCoverage(cov Coverage) {
	info.Printf("Rows observed: %d of %d", cov.Observed, cov.Rows)
	info.Printf("Observations matching a row: %d (%d match none)", cov.Matched, cov.Unmatched)
	info.Printf("Observations per row: mean %.3f, standard deviation %.3f, median %.0f",
		cov.Mean, cov.StdDev, cov.Median)
}

// run generates the Verilog file described by p and reports the results to
// stdout.
func run(p *Parameters, stdout io.Writer) error {
	// Read the inputs.
	tt, err := LoadTruthTable(p.TableName, p.NOutputs)
	if err != nil {
		return err
	}
	obs, err := LoadObservations(p.InputName)
	if err != nil {
		return err
	}
	fm, err := Profile(obs)
	if err != nil {
		return errors.Wrap(err, p.InputName)
	}
	if p.Verbose {
		logCoverage(Summarize(tt, fm))
	}

	// Replace the outputs of rarely observed rows.
	r, err := NewRandomizer(p.Rarity, WithSeed(p.Seed))
	if err != nil {
		return err
	}
	ftt, nDC, err := r.Filter(tt, fm)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Don't care conditions detected: %d\n", nDC)

	// Write the Verilog module.
	var buf bytes.Buffer
	if err := WriteVerilog(&buf, ftt, p.Name); err != nil {
		return err
	}
	name := p.OutputPath()
	if err := writeOutput(name, buf.Bytes()); err != nil {
		return errors.Wrap(err, "write Verilog file")
	}
	fmt.Fprintf(stdout, "Verilog file generated: %s\n", name)
	return nil
}

// runLayer runs every neuron of a multi-neuron run in turn, or the single
// table p describes.  It stops at the first neuron that fails.
func runLayer(p *Parameters, stdout io.Writer) error {
	if p.Neurons == 0 {
		return run(p, stdout)
	}
	for n := 0; n < p.Neurons; n++ {
		if err := run(p.Neuron(n), stdout); err != nil {
			return errors.Wrapf(err, "neuron %d", n)
		}
	}
	return nil
}

func main() {
	// Initialize program parameters.
	notify = log.New(os.Stderr, os.Args[0]+": ", 0)
	info = log.New(os.Stderr, "INFO: ", 0)
	p, err := ParseCommandLine(os.Args[0], os.Args[1:], os.Stderr)
	switch {
	case err == flag.ErrHelp:
		os.Exit(0)
	case errors.Cause(err) == ErrUsage:
		os.Exit(2) // The flag package has already reported the problem.
	case err != nil:
		notify.Fatal(err)
	}

	// Generate the Verilog files.
	if err := runLayer(p, os.Stdout); err != nil {
		notify.Fatal(err)
	}
}
