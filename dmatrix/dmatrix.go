// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dmatrix provides a pairwise distance matrix
// for a set of named samples.
package dmatrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Matrix is a symmetric pairwise distance matrix
// with a zero diagonal.
type Matrix struct {
	samples []string
	index   map[string]int
	d       [][]float64
}

// New creates a new distance matrix
// for the given samples,
// with all distances set to zero.
func New(samples []string) (*Matrix, error) {
	index := make(map[string]int, len(samples))
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			return nil, fmt.Errorf("empty sample name")
		}
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("sample %q repeated", s)
		}
		index[s] = len(names)
		names = append(names, s)
	}

	d := make([][]float64, len(names))
	for i := range d {
		d[i] = make([]float64, len(names))
	}
	return &Matrix{
		samples: names,
		index:   index,
		d:       d,
	}, nil
}

// At returns the distance between two samples
// by their positions in the matrix.
func (m *Matrix) At(i, j int) float64 {
	return m.d[i][j]
}

// Distance returns the distance between two samples
// by their names.
func (m *Matrix) Distance(a, b string) (float64, error) {
	a = strings.Join(strings.Fields(a), " ")
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("sample %q not in matrix", a)
	}
	b = strings.Join(strings.Fields(b), " ")
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("sample %q not in matrix", b)
	}
	return m.d[i][j], nil
}

// Len returns the number of samples in the matrix.
func (m *Matrix) Len() int {
	return len(m.samples)
}

// Samples returns the names of the samples in the matrix,
// in the matrix order.
func (m *Matrix) Samples() []string {
	samples := make([]string, len(m.samples))
	copy(samples, m.samples)
	return samples
}

// Set sets the distance between two samples
// by their positions in the matrix,
// keeping the matrix symmetric.
// The diagonal cannot be set.
func (m *Matrix) Set(i, j int, d float64) {
	if i == j {
		return
	}
	m.d[i][j] = d
	m.d[j][i] = d
}

// ReadTSV reads a distance matrix from a TSV file,
// as written by the TSV method.
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 2 {
		return nil, fmt.Errorf("while reading header: expecting sample names")
	}

	m, err := New(head[1:])
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	rows := 0
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		s := strings.Join(strings.Fields(row[0]), " ")
		i, ok := m.index[s]
		if !ok {
			return nil, fmt.Errorf("on row %d: sample %q not in header", ln, s)
		}
		for j := range m.samples {
			d, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: sample %q: %v", ln, m.samples[j], err)
			}
			if i == j {
				continue
			}
			m.d[i][j] = d
		}
		rows++
	}
	if rows != len(m.samples) {
		return nil, fmt.Errorf("got %d rows, expecting %d", rows, len(m.samples))
	}

	return m, nil
}

// TSV writes a distance matrix to a TSV file,
// as a square labelled matrix:
// the header contains the sample names,
// and each row contains the name of the sample
// and the distances to all samples in the matrix.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := append([]string{"sample"}, m.samples...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, s := range m.samples {
		row := make([]string, 0, len(m.samples)+1)
		row = append(row, s)
		for j := range m.samples {
			row = append(row, strconv.FormatFloat(m.d[i][j], 'f', 6, 64))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
