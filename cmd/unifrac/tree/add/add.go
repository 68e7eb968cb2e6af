// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add trees
// to a unifrac project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/unifrac/project"
	"github.com/js-arias/unifrac/tree"
)

var Command = &command.Command{
	Usage: `add [-f|--file <tree-file>]
	[--name <name>] [--timetree]
	<project-file> [<input-file>...]`,
	Short: "add phylogenetic trees to a unifrac project",
	Long: `
Command add read one or more trees from one or more input files, and add the
trees to a unifrac project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more input files can be given as arguments. If no file is given the
trees will be read from the standard input.

By default, the input is expected to be newick trees (i.e., trees in
parenthetical format), with the branch lengths in the units used for the
analysis. The name of the trees is set with the flag --name; by default the
name 'tree' will be used. If the flag --timetree is set, the input is expected
to be a time calibrated tree in the tab-delimited format of the timetree
package, and the branch lengths will be set in million years.

By default the trees will be stored in the tree file currently defined for the
project. If the project does not have a tree file, a new one will be created
with the name 'trees.tab'. A different tree file name can be defined using the
flag --file, or -f. If this flag is used, and there is a tree file already
defined, then a new file with that name will be created, and used as the tree
file for the project (previously defined trees will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var treeName string
var timeTree bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&treeName, "name", "tree", "")
	c.Flags().BoolVar(&timeTree, "timetree", false, "")
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

	var tc *tree.Collection
	if tf := p.Path(project.Trees); tf != "" {
		tc, err = readTreeFile(nil, tf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", tf, err)
		}
	}
	if tc == nil {
		tc = tree.NewCollection()
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for i, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		var nc *tree.Collection
		if timeTree {
			nc, err = readTimeTrees(c.Stdin(), fn)
		} else {
			tn := treeName
			if i > 0 {
				tn = fmt.Sprintf("%s.%d", treeName, i)
			}
			nc, err = readNewick(c.Stdin(), fn, tn)
		}
		if err != nil {
			return err
		}

		for _, tn := range nc.Names() {
			t := nc.Tree(tn)
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if treeFile == "" {
		treeFile = p.Path(project.Trees)
		if treeFile == "" {
			treeFile = "trees.tab"
		}
	}

	if err := writeTrees(tc); err != nil {
		return err
	}
	p.Add(project.Trees, treeFile)
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

func readTreeFile(r io.Reader, name string) (*tree.Collection, error) {
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

	c, err := tree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readNewick(r io.Reader, newickFile, name string) (*tree.Collection, error) {
	if newickFile != "" {
		f, err := os.Open(newickFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		newickFile = "stdin"
	}

	c, err := tree.Newick(r, name)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", newickFile, err)
	}
	return c, nil
}

func readTimeTrees(r io.Reader, name string) (*tree.Collection, error) {
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

	tc, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}

	c := tree.NewCollection()
	for _, tn := range tc.Names() {
		t, err := tree.FromTimeTree(tc.Tree(tn))
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: tree %q: %v", name, tn, err)
		}
		if err := c.Add(t); err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
	}
	return c, nil
}

func writeTrees(tc *tree.Collection) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
