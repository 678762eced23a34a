// This file provides routines for counting how often each input pattern was
// observed while profiling.

package main

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// ErrNoObservations is returned when the profiling trace holds no input
// patterns.
var ErrNoObservations = errors.New("no observed inputs")

// A FrequencyMap maps an observed input pattern to its number of
// occurrences.
type FrequencyMap map[BitString]int

// Count returns the number of times b was observed.
func (fm FrequencyMap) Count(b BitString) int {
	return fm[b]
}

// ReadObservations reads one observed input pattern per line.  Lines are kept
// verbatim; a pattern that matches no truth-table row is simply never looked
// up.
func ReadObservations(r io.Reader) ([]BitString, error) {
	var obs []BitString
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		obs = append(obs, BitString(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read observed inputs")
	}
	return obs, nil
}

// LoadObservations reads observed input patterns from the named file.
func LoadObservations(name string) ([]BitString, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	obs, err := ReadObservations(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return obs, nil
}

// Profile tallies the occurrences of each observed pattern.
func Profile(obs []BitString) (FrequencyMap, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}
	fm := make(FrequencyMap, len(obs))
	for _, b := range obs {
		fm[b]++
	}
	return fm, nil
}

// Coverage summarizes how well a profiling trace exercises a truth table.
type Coverage struct {
	Rows      int     // Number of truth-table rows
	Observed  int     // Rows observed at least once
	Matched   int     // Observations that address a row
	Unmatched int     // Observations that address no row
	Mean      float64 // Mean observations per row
	StdDev    float64 // Standard deviation of observations per row
	Median    float64 // Median observations per row
}

// Summarize computes coverage statistics of fm over the rows of tt.
func Summarize(tt TruthTable, fm FrequencyMap) Coverage {
	cov := Coverage{Rows: len(tt.Rows)}
	if cov.Rows == 0 {
		return cov
	}
	counts := make([]float64, len(tt.Rows))
	rows := make(map[BitString]struct{}, len(tt.Rows))
	for i, row := range tt.Rows {
		n := fm.Count(row.Input)
		counts[i] = float64(n)
		rows[row.Input] = struct{}{}
		if n > 0 {
			cov.Observed++
		}
		cov.Matched += n
	}
	for b, n := range fm {
		if _, ok := rows[b]; !ok {
			cov.Unmatched += n
		}
	}
	cov.Mean, cov.StdDev = stat.MeanStdDev(counts, nil)
	sort.Float64s(counts)
	cov.Median = stat.Quantile(0.5, stat.Empirical, counts, nil)
	return cov
}
