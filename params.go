// This file defines program parameters and routines for initializing them
// from the command line.

package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUsage is returned when the command line cannot be parsed.  The reason
// has already been written, together with a usage message, to the error
// output passed to ParseCommandLine.
var ErrUsage = errors.New("invalid command line")

// Parameters is a collection of all program parameters.
type Parameters struct {
	TableName string // Name of the input truth-table file
	InputName string // Name of the observed-inputs file
	Rarity    int    // Minimum observation count for a row to keep its output
	NOutputs  int    // Number of output bits
	Name      string // Module name and base name of the output file
	OutputDir string // Directory in which to write the output file
	Seed      uint64 // Random-number seed for don't-care outputs
	Verbose   bool   // Log profiling statistics
	Neurons   int    // Number of neuron tables to process, 0 for a single table
}

// NeuronVerb is replaced by the neuron index in the file and module names of
// a multi-neuron run.
const NeuronVerb = "%d"

// Neuron returns the parameters for neuron n of a multi-neuron run.
func (p *Parameters) Neuron(n int) *Parameters {
	np := *p
	idx := strconv.Itoa(n)
	np.TableName = strings.ReplaceAll(p.TableName, NeuronVerb, idx)
	np.InputName = strings.ReplaceAll(p.InputName, NeuronVerb, idx)
	np.Name = strings.ReplaceAll(p.Name, NeuronVerb, idx)
	np.Neurons = 0
	return &np
}

// OutputPath returns the name of the Verilog file to generate.
func (p *Parameters) OutputPath() string {
	return filepath.Join(p.OutputDir, p.Name+".v")
}

// ParseCommandLine parses parameters from the given command-line arguments,
// excluding the program name.  Usage and flag errors are written to errOut.
func ParseCommandLine(prog string, args []string, errOut io.Writer) (*Parameters, error) {
	// Parse the command line.
	var p Parameters
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -table <file> -input <file> -rarity <count> -n_out <bits> [<options>]\n", prog)
		fs.PrintDefaults()
	}
	fs.StringVar(&p.TableName, "table", "", "Truth-table file with one hexadecimal output value per line (required)")
	fs.StringVar(&p.InputName, "input", "", "File of observed input patterns, one bit string per line (required)")
	fs.IntVar(&p.Rarity, "rarity", -1, "Rows observed fewer than this many times are don't-cares (required)")
	fs.IntVar(&p.NOutputs, "n_out", 0, "Number of output bits (required)")
	fs.StringVar(&p.Name, "name", "output_file", "Module name and output base filename")
	fs.StringVar(&p.OutputDir, "output", ".", "Directory in which to write the Verilog file")
	fs.Uint64Var(&p.Seed, "seed", DefaultSeed, "Seed for random don't-care outputs")
	fs.BoolVar(&p.Verbose, "v", false, "Log profiling statistics")
	fs.IntVar(&p.Neurons, "neurons", 0, "Process this many neurons, replacing "+NeuronVerb+" in -table, -input and -name with each index")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, errors.Wrap(ErrUsage, err.Error())
	}

	// Validate the arguments.
	switch {
	case fs.NArg() > 0:
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	case p.TableName == "":
		return nil, errors.New("-table is required")
	case p.InputName == "":
		return nil, errors.New("-input is required")
	case p.Rarity < 0:
		return nil, errors.New("-rarity must specify a non-negative count")
	case p.NOutputs <= 0:
		return nil, errors.New("-n_out must specify a positive bit count")
	case p.NOutputs > MaxWidth:
		return nil, errors.Errorf("-n_out must not exceed %d", MaxWidth)
	case p.Name == "":
		return nil, errors.New("-name must not be empty")
	case p.Neurons < 0:
		return nil, errors.New("-neurons must be non-negative")
	}
	if p.Neurons > 0 {
		for _, opt := range []struct{ flag, value string }{
			{"-table", p.TableName},
			{"-input", p.InputName},
			{"-name", p.Name},
		} {
			if !strings.Contains(opt.value, NeuronVerb) {
				return nil, errors.Errorf("%s must contain %s when -neurons is given", opt.flag, NeuronVerb)
			}
		}
	}
	return &p, nil
}
