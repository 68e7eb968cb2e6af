// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add sample-taxon tables
// to a unifrac project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/project"
	"github.com/js-arias/unifrac/samples"
)

var Command = &command.Command{
	Usage: `add [-f|--file <table-file>]
	<project-file> [<input-file>...]`,
	Short: "add sample-taxon tables to a unifrac project",
	Long: `
Command add read one or more sample-taxon tables from one or more input files,
and add the samples to a unifrac project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more input files can be given as arguments. If no file is given the
table will be read from the standard input. In an input file, each column is a
sample and each row is a taxon; any value greater than zero indicates that the
taxon is present in the sample of that column. If a sample is defined in
several input files, or in the table already defined for the project, the
observations will be merged.

By default the samples will be stored in the table file currently defined for
the project. If the project does not have a table file, a new one will be
created with the name 'table.tab'. A different table file name can be defined
using the flag --file, or -f. If this flag is used, and there is a table file
already defined, then a new file with that name will be created, and used as
the table file for the project (previously defined samples will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tableFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tableFile, "file", "", "")
	c.Flags().StringVar(&tableFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	var tb *samples.Table
	if tf := p.Path(project.Table); tf != "" {
		tb, err = readTableFile(nil, tf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", tf, err)
		}
	}
	if tb == nil {
		tb = samples.New()
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		nt, err := readTableFile(c.Stdin(), fn)
		if err != nil {
			return err
		}

		for _, s := range nt.Samples() {
			tb.Add(s, "")
			for _, tax := range nt.Sample(s) {
				tb.Add(s, tax)
			}
		}
	}

	if tableFile == "" {
		tableFile = p.Path(project.Table)
		if tableFile == "" {
			tableFile = "table.tab"
		}
	}

	if err := writeTable(tb); err != nil {
		return err
	}
	p.Add(project.Table, tableFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readTableFile(r io.Reader, name string) (*samples.Table, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	tb, err := samples.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return tb, nil
}

func writeTable(tb *samples.Table) (err error) {
	f, err := os.Create(tableFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tb.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", tableFile, err)
	}
	return nil
}
