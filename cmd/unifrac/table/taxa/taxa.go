// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxa implements a command to print
// the list of taxa observed in the samples of a unifrac project.
package taxa

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/project"
)

var Command = &command.Command{
	Usage: "taxa [--unknown] <project-file>",
	Short: "print a list of the taxa in the sample table",
	Long: `
Command taxa reads the sample-taxon table from a UniFrac project and print the
name of the taxa observed in at least one sample in the standard output.

The argument of the command is the name of the project file.

If the flag --unknown is set, only the taxa that are absent from every tree in
the project will be printed. These taxa will be ignored when measuring
distances.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var unknown bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&unknown, "unknown", false, "")
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
	taxa := tb.Taxa()

	if unknown {
		taxa, err = unknownTaxa(p, taxa)
		if err != nil {
			return err
		}
	}

	for _, tax := range taxa {
		fmt.Fprintf(c.Stdout(), "%s\n", tax)
	}
	return nil
}

// UnknownTaxa returns the taxa that are absent
// from every tree in the project.
func unknownTaxa(p *project.Project, taxa []string) ([]string, error) {
	tc, err := p.Trees()
	if err != nil {
		return nil, err
	}

	unknown := make(map[string]bool, len(taxa))
	for _, tax := range taxa {
		unknown[tax] = true
	}
	for _, tn := range tc.Names() {
		t := tc.Tree(tn)
		for _, tax := range taxa {
			if !unknown[tax] {
				continue
			}
			if t.TaxonNode(tax) >= 0 {
				delete(unknown, tax)
			}
		}
	}

	ls := make([]string, 0, len(unknown))
	for _, tax := range taxa {
		if unknown[tax] {
			ls = append(ls, tax)
		}
	}
	return ls, nil
}
