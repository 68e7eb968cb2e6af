// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the list of samples in a unifrac project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/project"
)

var Command = &command.Command{
	Usage: "list [--taxa] <project-file>",
	Short: "print a list of the samples in a project",
	Long: `
Command list reads the sample-taxon table from a UniFrac project and print the
sample names, in the table order, in the standard output.

The argument of the command is the name of the project file.

If the flag --taxa is set, the taxa observed in each sample will be printed
after the sample name, indented by a tab.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var withTaxa bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&withTaxa, "taxa", false, "")
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

	for _, s := range tb.Samples() {
		fmt.Fprintf(c.Stdout(), "%s\n", s)
		if !withTaxa {
			continue
		}
		for _, tax := range tb.Sample(s) {
			fmt.Fprintf(c.Stdout(), "\t%s\n", tax)
		}
	}
	return nil
}
