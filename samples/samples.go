// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package samples provides a collection of samples
// with the taxa observed on each sample.
//
// As the collection is used for unweighted metrics,
// only the presence of a taxon in a sample is stored;
// abundances are reduced to presence-absence.
package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// A Table is a collection of samples
// and the taxa present on each sample.
//
// Samples are kept in the order in which
// they were added to the table
// (for a table file,
// the column order).
type Table struct {
	samples []string
	obs     map[string]map[string]bool
}

// New creates a new empty table.
func New() *Table {
	return &Table{
		obs: make(map[string]map[string]bool),
	}
}

// Add adds a taxon observation to a sample,
// adding the sample to the table
// if it is not defined.
// An empty taxon name just defines the sample,
// so samples without any observed taxon
// are valid.
func (tb *Table) Add(sample, taxon string) {
	sample = strings.Join(strings.Fields(sample), " ")
	if sample == "" {
		return
	}
	obs, ok := tb.obs[sample]
	if !ok {
		obs = make(map[string]bool)
		tb.obs[sample] = obs
		tb.samples = append(tb.samples, sample)
	}

	taxon = strings.Join(strings.Fields(taxon), " ")
	if taxon == "" {
		return
	}
	obs[taxon] = true
}

// Has returns true if the given taxon
// was observed in the given sample.
func (tb *Table) Has(sample, taxon string) bool {
	sample = strings.Join(strings.Fields(sample), " ")
	taxon = strings.Join(strings.Fields(taxon), " ")
	return tb.obs[sample][taxon]
}

// Sample returns the taxa observed in a sample,
// sorted alphabetically.
func (tb *Table) Sample(sample string) []string {
	sample = strings.Join(strings.Fields(sample), " ")
	obs, ok := tb.obs[sample]
	if !ok {
		return nil
	}
	taxa := make([]string, 0, len(obs))
	for tax := range obs {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

// Samples returns the names of the samples in the table,
// in their addition order.
func (tb *Table) Samples() []string {
	samples := make([]string, len(tb.samples))
	copy(samples, tb.samples)
	return samples
}

// Taxa returns the taxa observed in at least one sample,
// sorted alphabetically.
func (tb *Table) Taxa() []string {
	seen := make(map[string]bool)
	for _, obs := range tb.obs {
		for tax := range obs {
			seen[tax] = true
		}
	}
	taxa := make([]string, 0, len(seen))
	for tax := range seen {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

// ReadTSV reads a table from a taxon-sample TSV file.
//
// In the file each column is a sample
// and each row is a taxon.
// The first field of the header row is ignored;
// the other fields are the sample names.
// In a data row,
// the first field is the taxon name,
// and any value greater than zero
// indicates that the taxon is present in the sample
// of that column.
// Values that cannot be read as numbers
// are taken as absences.
//
// Here is an example file:
//
//	taxon	SampleA	SampleB	SampleC
//	T1	10	0	5
//	T2	0	25	0
//	T3	3	1	0
func ReadTSV(r io.Reader) (*Table, error) {
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

	tb := New()
	for _, s := range head[1:] {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			return nil, fmt.Errorf("while reading header: empty sample name")
		}
		if _, dup := tb.obs[s]; dup {
			return nil, fmt.Errorf("while reading header: sample %q repeated", s)
		}
		tb.Add(s, "")
	}
	samples := tb.Samples()

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		taxon := strings.Join(strings.Fields(row[0]), " ")
		if taxon == "" {
			return nil, fmt.Errorf("on row %d: expecting taxon name", ln)
		}
		for i, s := range samples {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				continue
			}
			if v > 0 {
				tb.Add(s, taxon)
			}
		}
	}
	return tb, nil
}

// TSV writes a table to a taxon-sample TSV file,
// with the presence of a taxon in a sample
// written as 1
// and its absence as 0.
func (tb *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	samples := tb.Samples()
	header := append([]string{"taxon"}, samples...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tax := range tb.Taxa() {
		row := make([]string, 0, len(samples)+1)
		row = append(row, tax)
		for _, s := range samples {
			v := "0"
			if tb.obs[s][tax] {
				v = "1"
			}
			row = append(row, v)
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
