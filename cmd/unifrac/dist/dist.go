// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dist implements a command to measure
// pairwise UniFrac distances between the samples of a project.
package dist

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/dmatrix"
	"github.com/js-arias/unifrac/project"
	"github.com/js-arias/unifrac/unifrac"
)

var Command = &command.Command{
	Usage: `dist [--tree <tree-name>] [--cpu <number>]
	[-o|--output <prefix>] <project-file>`,
	Short: "measure pairwise UniFrac distances",
	Long: `
Command dist reads the trees and the sample-taxon table from a UniFrac
project, measures the unweighted UniFrac distance between each pair of
samples, and writes a distance matrix for each tree.

The unweighted UniFrac distance between two samples is the length of the
branches leading to taxa present in only one of the samples, divided by the
length of the branches leading to taxa present in any of the samples. Two
samples without any shared branch have a distance of 1; two samples with the
same taxa have a distance of 0.

The argument of the command is the name of the project file.

By default a distance matrix will be made for each tree in the project. If the
flag --tree is set, only the indicated tree will be used.

Taxa observed in a sample but absent from a tree are ignored for that tree,
and reported in the standard error.

By default all available processors will be used. The number of processors can
be set with the flag --cpu.

The distance matrix of a tree is written as a tab-delimited file with the name
'<prefix>-<tree-name>.tab', in which the prefix is 'dist' by default. A
different prefix can be defined with the flag --output, or -o.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var numCPU int
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().StringVar(&output, "output", "dist", "")
	c.Flags().StringVar(&output, "o", "dist", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tb, err := p.Table()
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	var ls []string
	if treeName != "" {
		if tc.Tree(treeName) == nil {
			return fmt.Errorf("tree %q not in project %q", treeName, args[0])
		}
		ls = append(ls, treeName)
	} else {
		ls = tc.Names()
	}

	for _, tn := range ls {
		ut, err := unifrac.New(tc.Tree(tn))
		if err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}
		for _, tax := range ut.Unknown(tb.Taxa()) {
			fmt.Fprintf(c.Stderr(), "WARNING: taxon %q not in tree %q: ignored\n", tax, tn)
		}

		m, err := unifrac.Pairwise(ut, tb, numCPU)
		if err != nil {
			return fmt.Errorf("on tree %q: %v", tn, err)
		}
		if err := writeMatrix(m, tn); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(m *dmatrix.Matrix, treeName string) (err error) {
	name := fmt.Sprintf("%s-%s.tab", output, treeName)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	fmt.Fprintf(f, "# unweighted UniFrac distances, tree %q\n", treeName)
	fmt.Fprintf(f, "# %d samples\n", m.Len())
	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
